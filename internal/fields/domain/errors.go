package domain

import (
	"github.com/allisson/encrypted-fields/internal/errors"
)

// Field encryption error definitions.
var (
	// ErrRecordKeyNotFound indicates a field needs the per-record data key and none exists.
	ErrRecordKeyNotFound = errors.Wrap(errors.ErrNotFound, "record key not found")

	// ErrRecordNotFound indicates a record key row points at a record that no longer exists.
	ErrRecordNotFound = errors.Wrap(errors.ErrNotFound, "record not found")

	// ErrKeyReferenceUnresolved indicates an explicit key reference names a value that is not set.
	ErrKeyReferenceUnresolved = errors.Wrap(errors.ErrInvalidInput, "key reference unresolved")

	// ErrUnsupportedFieldValue indicates a field holds a value shape the codec cannot encrypt.
	ErrUnsupportedFieldValue = errors.Wrap(errors.ErrInvalidInput, "unsupported field value")

	// ErrUnknownField indicates a field name has no accessor on the record type.
	ErrUnknownField = errors.Wrap(errors.ErrInvalidInput, "unknown field")

	// ErrUnknownRecordType indicates a record type is not managed by the store.
	ErrUnknownRecordType = errors.Wrap(errors.ErrInvalidInput, "unknown record type")

	// ErrInvalidRegistration indicates an empty record type or field name.
	ErrInvalidRegistration = errors.Wrap(errors.ErrInvalidInput, "invalid field registration")

	// ErrRecordKeyNotWrapped indicates an attempt to store plaintext key material.
	ErrRecordKeyNotWrapped = errors.Wrap(errors.ErrInvalidInput, "record key must be wrapped before storage")

	// ErrRegistryFrozen indicates AddField was called after the registry was built.
	ErrRegistryFrozen = errors.Wrap(errors.ErrConflict, "registry frozen")

	// ErrRotationFailed indicates the rotation batch was aborted and rolled back.
	ErrRotationFailed = errors.New("rotation failed, no keys were changed")
)
