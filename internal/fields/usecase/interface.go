// Package usecase implements the field encryption workflows: the record key store, the
// field codec that encrypts and decrypts registered fields, the persistence lifecycle
// adapter, bulk key rotation, and verification.
package usecase

import (
	"context"

	fieldsDomain "github.com/allisson/encrypted-fields/internal/fields/domain"
)

// RecordKeyRepository persists wrapped record keys.
type RecordKeyRepository interface {
	// Create inserts a wrapped key and sets its ID.
	Create(ctx context.Context, key *fieldsDomain.RecordKey) error

	// Update replaces an existing key by ID.
	Update(ctx context.Context, key *fieldsDomain.RecordKey) error

	// GetByIdentity returns the wrapped key of a record or ErrRecordKeyNotFound.
	GetByIdentity(ctx context.Context, recordType string, identity int64) (*fieldsDomain.RecordKey, error)

	// List returns every key ordered by ID, locking the rows when forUpdate is set.
	List(ctx context.Context, forUpdate bool) ([]*fieldsDomain.RecordKey, error)
}

// RecordStore loads and saves the records that own encrypted fields.
type RecordStore interface {
	// Find returns the record or ErrRecordNotFound.
	Find(ctx context.Context, recordType string, identity int64) (fieldsDomain.Record, error)

	// Save writes the record's current field values.
	Save(ctx context.Context, rec fieldsDomain.Record) error
}

// RecordKeySealer performs the wrap and unwrap transitions of a record key.
type RecordKeySealer interface {
	Wrap(key *fieldsDomain.RecordKey) error
	Unwrap(key *fieldsDomain.RecordKey) error
	WrapWith(key *fieldsDomain.RecordKey, wrappingKey string) error
	UnwrapWith(key *fieldsDomain.RecordKey, wrappingKey string) error
}

// KeyResolver turns the Key of a FieldOption into literal hex key material.
type KeyResolver interface {
	Resolve(key string) (string, error)
}

// RecordKeyStore is the record key table as seen by the codec: keys come out unwrapped
// and go in wrapped.
type RecordKeyStore interface {
	// FindByIdentity returns the unwrapped key of a record, or nil when none exists.
	FindByIdentity(ctx context.Context, recordType string, identity int64) (*fieldsDomain.RecordKey, error)

	// Persist wraps the key and creates or updates it.
	Persist(ctx context.Context, key *fieldsDomain.RecordKey) error
}

// FieldCodec encrypts and decrypts the registered fields of records.
//
// Callers must invoke Encode exactly once before each write and Decode exactly once after
// each read. Encoding an already encoded record encrypts the ciphertext again.
type FieldCodec interface {
	// Encode encrypts every registered field in place, provisioning the record key if needed.
	Encode(ctx context.Context, rec fieldsDomain.Record) error

	// Decode decrypts every registered field in place.
	Decode(ctx context.Context, rec fieldsDomain.Record) error

	// LinkPending attaches the record's identity to the key provisioned before it had one,
	// then persists that key. It is a no-op when no key is pending.
	LinkPending(ctx context.Context, rec fieldsDomain.Record) error

	// DiscardPending drops the pending key of a record whose insert was aborted.
	DiscardPending(rec fieldsDomain.Record)

	// PendingCount returns the number of keys waiting for a record identity.
	PendingCount() int
}

// Rotator re-encrypts every managed record under fresh key material.
type Rotator interface {
	Rotate(ctx context.Context, input fieldsDomain.RotateInput) (*fieldsDomain.RotateOutput, error)
}

// Verifier checks that every managed record decrypts under the current configuration.
type Verifier interface {
	Verify(ctx context.Context) (*fieldsDomain.VerifyReport, error)
}
