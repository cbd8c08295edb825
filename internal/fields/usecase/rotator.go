package usecase

import (
	"context"
	"fmt"
	"strings"

	validation "github.com/jellydator/validation"

	cryptoService "github.com/allisson/encrypted-fields/internal/crypto/service"
	"github.com/allisson/encrypted-fields/internal/database"
	apperrors "github.com/allisson/encrypted-fields/internal/errors"
	fieldsDomain "github.com/allisson/encrypted-fields/internal/fields/domain"
	customValidation "github.com/allisson/encrypted-fields/internal/validation"
)

// Suspender disables persistence hooks while rotation rewrites ciphertext directly.
type Suspender interface {
	Suspend() (resume func())
}

// keyMaterial is the master key side of a rotation: the configured master key or an
// explicit hex key.
type keyMaterial struct {
	useMaster bool
	key       string
}

func (m keyMaterial) fieldCipher(cipher cryptoService.Cipher) fieldCipher {
	return fieldCipher{cipher: cipher, useMaster: m.useMaster, key: m.key}
}

func (m keyMaterial) unwrap(sealer RecordKeySealer, key *fieldsDomain.RecordKey) error {
	if m.useMaster {
		return sealer.Unwrap(key)
	}
	return sealer.UnwrapWith(key, m.key)
}

func (m keyMaterial) wrap(sealer RecordKeySealer, key *fieldsDomain.RecordKey) error {
	if m.useMaster {
		return sealer.Wrap(key)
	}
	return sealer.WrapWith(key, m.key)
}

type rotator struct {
	txManager database.TxManager
	keyRepo   RecordKeyRepository
	records   RecordStore
	registry  *fieldsDomain.Registry
	cipher    cryptoService.Cipher
	sealer    RecordKeySealer
	resolver  KeyResolver
	hooks     Suspender
}

// NewRotator creates a Rotator.
func NewRotator(
	txManager database.TxManager,
	keyRepo RecordKeyRepository,
	records RecordStore,
	registry *fieldsDomain.Registry,
	cipher cryptoService.Cipher,
	sealer RecordKeySealer,
	resolver KeyResolver,
	hooks Suspender,
) Rotator {
	return &rotator{
		txManager: txManager,
		keyRepo:   keyRepo,
		records:   records,
		registry:  registry,
		cipher:    cipher,
		sealer:    sealer,
		resolver:  resolver,
		hooks:     hooks,
	}
}

// Rotate walks every record key inside one transaction. For each record it unwraps the
// data key with the old material, re-encrypts every field, and wraps a fresh data key
// under the new material. Fields keep their key source: master-key fields move from the
// old to the new master material, explicit-key fields are re-sealed under the same key,
// and data-key fields move to the fresh data key.
//
// Any failure rolls the whole batch back and returns ErrRotationFailed.
func (r *rotator) Rotate(
	ctx context.Context,
	input fieldsDomain.RotateInput,
) (*fieldsDomain.RotateOutput, error) {
	input.DatabaseKey = strings.TrimSpace(input.DatabaseKey)
	if err := r.validate(input); err != nil {
		return nil, err
	}

	from := keyMaterial{useMaster: true}
	if input.DatabaseKey != "" {
		from = keyMaterial{key: input.DatabaseKey}
	}

	to := keyMaterial{useMaster: true}
	output := &fieldsDomain.RotateOutput{}
	if input.GenerateNewKey {
		newMasterKey, err := r.cipher.GenerateKey()
		if err != nil {
			return nil, err
		}
		to = keyMaterial{key: newMasterKey}
		output.NewMasterKey = newMasterKey
	}

	resume := r.hooks.Suspend()
	defer resume()

	rotated := 0
	err := r.txManager.WithTx(ctx, func(txCtx context.Context) error {
		keys, err := r.keyRepo.List(txCtx, true)
		if err != nil {
			return err
		}

		for _, key := range keys {
			if err := r.rotateRecord(txCtx, key, from, to); err != nil {
				return fmt.Errorf("%s %d: %w", key.RecordType, key.RecordIdentity, err)
			}
			rotated++
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", fieldsDomain.ErrRotationFailed, err)
	}

	output.Rotated = rotated
	return output, nil
}

func (r *rotator) validate(input fieldsDomain.RotateInput) error {
	if input.DatabaseKey == "" && !input.GenerateNewKey {
		return apperrors.Wrap(
			apperrors.ErrInvalidInput,
			"no database key provided and not generating a new key",
		)
	}

	err := validation.ValidateStruct(&input,
		validation.Field(&input.DatabaseKey, customValidation.HexKey{Size: r.cipher.KeyLength()}),
	)
	return customValidation.WrapValidationError(err)
}

func (r *rotator) rotateRecord(
	ctx context.Context,
	stored *fieldsDomain.RecordKey,
	from, to keyMaterial,
) error {
	oldKey := stored.Clone()
	if err := from.unwrap(r.sealer, oldKey); err != nil {
		return fmt.Errorf("failed to unwrap record key: %w", err)
	}

	rec, err := r.records.Find(ctx, stored.RecordType, stored.RecordIdentity)
	if err != nil {
		return err
	}

	newRecordKey, err := r.cipher.GenerateKey()
	if err != nil {
		return err
	}

	fields := r.registry.Fields(stored.RecordType)
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

		var src, dst fieldCipher
		switch field.Option.KeySource() {
		case fieldsDomain.KeySourceMaster:
			src = from.fieldCipher(r.cipher)
			dst = to.fieldCipher(r.cipher)
		case fieldsDomain.KeySourceExplicit:
			key, err := r.resolver.Resolve(field.Option.Key)
			if err != nil {
				return fieldError(rec, field.Name, err)
			}
			src = fieldCipher{cipher: r.cipher, key: key}
			dst = src
		default:
			src = fieldCipher{cipher: r.cipher, key: oldKey.KeyMaterial}
			dst = fieldCipher{cipher: r.cipher, key: newRecordKey}
		}

		rotated, err := transformValue(value, field.Option, func(envelope string) (string, error) {
			plaintext, err := src.open(envelope)
			if err != nil {
				return "", err
			}
			return dst.seal(plaintext)
		})
		if err != nil {
			return fieldError(rec, field.Name, err)
		}
		staged[field.Name] = rotated
	}

	if err := applyStaged(accessor, fields, staged); err != nil {
		return err
	}
	if err := r.records.Save(ctx, rec); err != nil {
		return err
	}

	next := stored.Clone()
	next.KeyMaterial = newRecordKey
	next.IsWrapped = false
	if err := to.wrap(r.sealer, next); err != nil {
		return fmt.Errorf("failed to wrap record key: %w", err)
	}

	return r.keyRepo.Update(ctx, next)
}
