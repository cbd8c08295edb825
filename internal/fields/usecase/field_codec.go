package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	cryptoService "github.com/allisson/encrypted-fields/internal/crypto/service"
	apperrors "github.com/allisson/encrypted-fields/internal/errors"
	fieldsDomain "github.com/allisson/encrypted-fields/internal/fields/domain"
)

// fieldCodec encrypts and decrypts registered fields.
//
// Keys provisioned for records without an identity wait in a side-table keyed by a
// correlation token stamped on the record, until LinkPending or DiscardPending.
type fieldCodec struct {
	registry *fieldsDomain.Registry
	cipher   cryptoService.Cipher
	keys     RecordKeyStore
	resolver KeyResolver

	mu      sync.Mutex
	pending map[string]*fieldsDomain.RecordKey
}

// NewFieldCodec creates a FieldCodec. registry must be frozen.
func NewFieldCodec(
	registry *fieldsDomain.Registry,
	cipher cryptoService.Cipher,
	keys RecordKeyStore,
	resolver KeyResolver,
) FieldCodec {
	return &fieldCodec{
		registry: registry,
		cipher:   cipher,
		keys:     keys,
		resolver: resolver,
		pending:  make(map[string]*fieldsDomain.RecordKey),
	}
}

// Encode encrypts every registered field. New values are staged and only written back once
// every field succeeded; a newly provisioned key is persisted (or parked) before that.
func (c *fieldCodec) Encode(ctx context.Context, rec fieldsDomain.Record) error {
	fields := c.registry.Fields(rec.RecordType())
	if len(fields) == 0 {
		return nil
	}

	recordKey, err := c.currentKey(ctx, rec)
	if err != nil {
		return err
	}

	accessor := rec.FieldAccessor()
	staged := make(map[string]any, len(fields))
	provisioned := false

	for _, field := range fields {
		value, err := accessor.GetField(field.Name)
		if err != nil {
			return err
		}
		if isAbsent(value) {
			continue
		}

		if field.Option.ProvisionsRecordKey() && recordKey == nil {
			recordKey, err = c.provisionKey(rec)
			if err != nil {
				return err
			}
			provisioned = true
		}

		fc, err := selectCipher(c.cipher, c.resolver, field.Option, recordKey)
		if err != nil {
			return fieldError(rec, field.Name, err)
		}

		encoded, err := transformValue(value, field.Option, fc.seal)
		if err != nil {
			return fieldError(rec, field.Name, err)
		}
		staged[field.Name] = encoded
	}

	if provisioned {
		if err := c.storeProvisioned(ctx, rec, recordKey); err != nil {
			return err
		}
	}

	return applyStaged(accessor, fields, staged)
}

// Decode decrypts every registered field. Fields keyed by the master key or an explicit
// key are decrypted even when the record has no data key; record-keyed fields of a record
// without a data key were never encoded and are left as they are.
func (c *fieldCodec) Decode(ctx context.Context, rec fieldsDomain.Record) error {
	fields := c.registry.Fields(rec.RecordType())
	if len(fields) == 0 {
		return nil
	}

	recordKey, err := c.currentKey(ctx, rec)
	if err != nil {
		return err
	}

	accessor := rec.FieldAccessor()
	staged := make(map[string]any, len(fields))

	for _, field := range fields {
		value, err := accessor.GetField(field.Name)
		if err != nil {
			return err
		}
		if isAbsent(value) {
			continue
		}
		if field.Option.NeedsRecordKey() && recordKey == nil {
			continue
		}

		fc, err := selectCipher(c.cipher, c.resolver, field.Option, recordKey)
		if err != nil {
			return fieldError(rec, field.Name, err)
		}

		decoded, err := transformValue(value, field.Option, fc.open)
		if err != nil {
			return fieldError(rec, field.Name, err)
		}
		staged[field.Name] = decoded
	}

	return applyStaged(accessor, fields, staged)
}

// LinkPending persists the key parked for rec under its new identity.
func (c *fieldCodec) LinkPending(ctx context.Context, rec fieldsDomain.Record) error {
	token := rec.CorrelationToken()
	if token == "" {
		return nil
	}

	c.mu.Lock()
	key, ok := c.pending[token]
	c.mu.Unlock()
	if !ok {
		rec.SetCorrelationToken("")
		return nil
	}

	identity, hasIdentity := rec.RecordIdentity()
	if !hasIdentity {
		return apperrors.Wrap(apperrors.ErrInvalidInput, fmt.Sprintf("%s record has no identity yet", rec.RecordType()))
	}

	linked := key.Clone()
	linked.RecordIdentity = identity
	if err := c.keys.Persist(ctx, linked); err != nil {
		return err
	}

	c.mu.Lock()
	delete(c.pending, token)
	c.mu.Unlock()
	rec.SetCorrelationToken("")

	return nil
}

// DiscardPending drops the key parked for rec, if any.
func (c *fieldCodec) DiscardPending(rec fieldsDomain.Record) {
	token := rec.CorrelationToken()
	if token == "" {
		return
	}

	c.mu.Lock()
	delete(c.pending, token)
	c.mu.Unlock()
	rec.SetCorrelationToken("")
}

// PendingCount returns the number of parked keys.
func (c *fieldCodec) PendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// currentKey returns the stored key for identified records, or the parked key for records
// encoded before they had an identity.
func (c *fieldCodec) currentKey(ctx context.Context, rec fieldsDomain.Record) (*fieldsDomain.RecordKey, error) {
	if identity, ok := rec.RecordIdentity(); ok {
		return c.keys.FindByIdentity(ctx, rec.RecordType(), identity)
	}

	token := rec.CorrelationToken()
	if token == "" {
		return nil, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pending[token], nil
}

func (c *fieldCodec) provisionKey(rec fieldsDomain.Record) (*fieldsDomain.RecordKey, error) {
	hexKey, err := c.cipher.GenerateKey()
	if err != nil {
		return nil, err
	}
	identity, _ := rec.RecordIdentity()
	return fieldsDomain.NewRecordKey(rec.RecordType(), identity, hexKey), nil
}

func (c *fieldCodec) storeProvisioned(
	ctx context.Context,
	rec fieldsDomain.Record,
	key *fieldsDomain.RecordKey,
) error {
	if key.HasIdentity() {
		return c.keys.Persist(ctx, key)
	}

	token := uuid.NewString()

	c.mu.Lock()
	c.pending[token] = key
	c.mu.Unlock()
	rec.SetCorrelationToken(token)

	return nil
}

func applyStaged(accessor fieldsDomain.FieldAccessor, fields []fieldsDomain.FieldEntry, staged map[string]any) error {
	for _, field := range fields {
		value, ok := staged[field.Name]
		if !ok {
			continue
		}
		if err := accessor.SetField(field.Name, value); err != nil {
			return err
		}
	}
	return nil
}

func fieldError(rec fieldsDomain.Record, field string, err error) error {
	return fmt.Errorf("%s.%s: %w", rec.RecordType(), field, err)
}
