package domain

import (
	"github.com/allisson/encrypted-fields/internal/errors"
)

// Cryptographic operation error definitions.
//
// These domain-specific errors wrap the base errors from internal/errors so callers
// can match on the category (invalid input versus integrity failure) or on the
// specific condition.
var (
	// ErrUnsupportedCipher indicates the configured algorithm is not in the catalogue.
	//
	// Raised when the cipher engine is constructed, so a misconfigured process
	// fails at startup instead of on first use.
	ErrUnsupportedCipher = errors.Wrap(errors.ErrInvalidInput, "unsupported cipher")

	// ErrEmptyInput indicates an empty plaintext or envelope was supplied.
	ErrEmptyInput = errors.Wrap(errors.ErrInvalidInput, "empty input")

	// ErrInvalidKey indicates a key is not valid hex or its decoded length does not
	// match the algorithm's required key size.
	ErrInvalidKey = errors.Wrap(errors.ErrInvalidInput, "invalid key")

	// ErrDecryptionFailed indicates a decryption operation failed.
	//
	// This error can occur due to:
	//   - Wrong decryption key used
	//   - Ciphertext has been tampered with (authentication failure)
	//   - Corrupted or truncated envelope
	//
	// For security reasons, the specific cause is not disclosed.
	ErrDecryptionFailed = errors.Wrap(errors.ErrIntegrity, "decryption failed")

	// ErrMasterKeyNotSet indicates no master key was configured.
	ErrMasterKeyNotSet = errors.Wrap(errors.ErrInvalidInput, "MASTER_KEY not set")

	// ErrInvalidMasterKeyBase64 indicates a KMS-encrypted master key is not valid base64.
	ErrInvalidMasterKeyBase64 = errors.Wrap(errors.ErrInvalidInput, "invalid master key base64")

	// ErrKMSDecryptionFailed indicates the KMS keeper could not decrypt the master key.
	ErrKMSDecryptionFailed = errors.Wrap(errors.ErrIntegrity, "kms decryption failed")
)
