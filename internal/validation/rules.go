// Package validation provides custom validation rules for the application.
package validation

import (
	"encoding/hex"
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/encrypted-fields/internal/errors"
)

var (
	// identifierRegex matches SQL-safe identifiers used for tables and columns
	identifierRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

	// keyReferenceRegex matches "env:NAME" and "%env(NAME)%" key references
	keyReferenceRegex = regexp.MustCompile(`^(env:[A-Za-z_][A-Za-z0-9_]*|%env\([A-Za-z_][A-Za-z0-9_]*\)%)$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// Identifier validates that a string is usable as an unquoted SQL identifier.
var Identifier = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_identifier_type", "must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}
	if !identifierRegex.MatchString(s) {
		return validation.NewError(
			"validation_identifier",
			"must start with a letter or underscore and contain only letters, digits and underscores",
		)
	}
	return nil
})

// HexKey validates that a string is a hex-encoded key of exactly Size bytes.
// A zero Size accepts any non-empty even-length hex string.
type HexKey struct {
	Size int
}

// Validate checks the hex encoding and decoded length
func (h HexKey) Validate(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_hex_key_type", "must be a string")
	}
	if s == "" {
		return nil
	}

	decoded, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return validation.NewError("validation_hex_key", "must be hex encoded")
	}
	if h.Size > 0 && len(decoded) != h.Size {
		return validation.NewError("validation_hex_key_length", "has the wrong length for the configured cipher")
	}
	return nil
}

// KeyOrReference validates an explicit field key: either a key reference or a hex key.
var KeyOrReference = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_key_type", "must be a string")
	}
	if s == "" || IsKeyReference(s) {
		return nil
	}
	if _, err := hex.DecodeString(s); err != nil {
		return validation.NewError("validation_key", "must be hex encoded or an env reference")
	}
	return nil
})

// IsKeyReference reports whether s has the shape of a key reference.
func IsKeyReference(s string) bool {
	return keyReferenceRegex.MatchString(s)
}
