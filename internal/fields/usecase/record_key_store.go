package usecase

import (
	"context"
	"errors"

	fieldsDomain "github.com/allisson/encrypted-fields/internal/fields/domain"
)

// recordKeyStore runs the unwrap-after-load and wrap-before-save transitions around the
// repository, so a key held by the codec is never wrapped and a stored key never is not.
type recordKeyStore struct {
	repo   RecordKeyRepository
	sealer RecordKeySealer
}

// NewRecordKeyStore creates a RecordKeyStore over repo.
func NewRecordKeyStore(repo RecordKeyRepository, sealer RecordKeySealer) RecordKeyStore {
	return &recordKeyStore{repo: repo, sealer: sealer}
}

// FindByIdentity returns the unwrapped key or nil when the record has none.
func (s *recordKeyStore) FindByIdentity(
	ctx context.Context,
	recordType string,
	identity int64,
) (*fieldsDomain.RecordKey, error) {
	key, err := s.repo.GetByIdentity(ctx, recordType, identity)
	if err != nil {
		if errors.Is(err, fieldsDomain.ErrRecordKeyNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if err := s.sealer.Unwrap(key); err != nil {
		return nil, err
	}
	return key, nil
}

// Persist wraps a copy of key and stores it. The caller's key stays unwrapped so it can
// keep encrypting fields; its ID is updated after a create.
func (s *recordKeyStore) Persist(ctx context.Context, key *fieldsDomain.RecordKey) error {
	stored := key.Clone()
	if err := s.sealer.Wrap(stored); err != nil {
		return err
	}

	if stored.ID == 0 {
		if err := s.repo.Create(ctx, stored); err != nil {
			return err
		}
		key.ID = stored.ID
		return nil
	}

	return s.repo.Update(ctx, stored)
}
