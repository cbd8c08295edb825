package usecase

import (
	"context"

	cryptoService "github.com/allisson/encrypted-fields/internal/crypto/service"
	fieldsDomain "github.com/allisson/encrypted-fields/internal/fields/domain"
)

type verifier struct {
	keyRepo  RecordKeyRepository
	records  RecordStore
	registry *fieldsDomain.Registry
	cipher   cryptoService.Cipher
	sealer   RecordKeySealer
	resolver KeyResolver
}

// NewVerifier creates a Verifier. It never writes.
func NewVerifier(
	keyRepo RecordKeyRepository,
	records RecordStore,
	registry *fieldsDomain.Registry,
	cipher cryptoService.Cipher,
	sealer RecordKeySealer,
	resolver KeyResolver,
) Verifier {
	return &verifier{
		keyRepo:  keyRepo,
		records:  records,
		registry: registry,
		cipher:   cipher,
		sealer:   sealer,
		resolver: resolver,
	}
}

// Verify unwraps every record key with the configured master key and decrypts every
// registered field of its record. The first failure of each record is reported; only
// errors listing the keys abort the run.
func (v *verifier) Verify(ctx context.Context) (*fieldsDomain.VerifyReport, error) {
	keys, err := v.keyRepo.List(ctx, false)
	if err != nil {
		return nil, err
	}

	report := &fieldsDomain.VerifyReport{Keys: len(keys)}
	for _, stored := range keys {
		fields, err := v.verifyRecord(ctx, stored)
		report.Fields += fields
		if err != nil {
			report.Failures = append(report.Failures, *err)
			continue
		}
		report.Records++
	}

	return report, nil
}

func (v *verifier) verifyRecord(ctx context.Context, stored *fieldsDomain.RecordKey) (int, *fieldsDomain.RecordFailure) {
	failure := func(field string, err error) *fieldsDomain.RecordFailure {
		return &fieldsDomain.RecordFailure{
			RecordType:     stored.RecordType,
			RecordIdentity: stored.RecordIdentity,
			Field:          field,
			Err:            err,
		}
	}

	key := stored.Clone()
	if err := v.sealer.Unwrap(key); err != nil {
		return 0, failure("", err)
	}

	rec, err := v.records.Find(ctx, stored.RecordType, stored.RecordIdentity)
	if err != nil {
		return 0, failure("", err)
	}

	checked := 0
	accessor := rec.FieldAccessor()
	for _, field := range v.registry.Fields(stored.RecordType) {
		value, err := accessor.GetField(field.Name)
		if err != nil {
			return checked, failure(field.Name, err)
		}
		if isAbsent(value) {
			continue
		}

		fc, err := selectCipher(v.cipher, v.resolver, field.Option, key)
		if err != nil {
			return checked, failure(field.Name, err)
		}
		if _, err := transformValue(value, field.Option, fc.open); err != nil {
			return checked, failure(field.Name, err)
		}
		checked++
	}

	return checked, nil
}
