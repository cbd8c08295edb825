package errors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	cryptoDomain "github.com/allisson/encrypted-fields/internal/crypto/domain"
	apperrors "github.com/allisson/encrypted-fields/internal/errors"
	fieldsDomain "github.com/allisson/encrypted-fields/internal/fields/domain"
)

func TestWrap(t *testing.T) {
	t.Run("keeps the chain", func(t *testing.T) {
		wrapped := apperrors.Wrap(apperrors.ErrNotFound, "record key not found")

		assert.EqualError(t, wrapped, "record key not found: not found")
		assert.ErrorIs(t, wrapped, apperrors.ErrNotFound)
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, apperrors.Wrap(nil, "context"))
	})

	t.Run("rewrapping keeps the category", func(t *testing.T) {
		wrapped := apperrors.Wrap(fieldsDomain.ErrRecordNotFound, "customers 7")

		assert.ErrorIs(t, wrapped, fieldsDomain.ErrRecordNotFound)
		assert.ErrorIs(t, wrapped, apperrors.ErrNotFound)
	})
}

func TestNew(t *testing.T) {
	err := apperrors.New("rotation failed")

	assert.EqualError(t, err, "rotation failed")
	assert.False(t, errors.Is(err, apperrors.ErrInvalidInput))
}

// TestDomainErrorCategories checks that each domain error matches exactly one category.
func TestDomainErrorCategories(t *testing.T) {
	categories := []error{
		apperrors.ErrNotFound,
		apperrors.ErrConflict,
		apperrors.ErrInvalidInput,
		apperrors.ErrIntegrity,
	}

	tests := []struct {
		err      error
		category error
	}{
		{fieldsDomain.ErrRecordKeyNotFound, apperrors.ErrNotFound},
		{fieldsDomain.ErrRecordNotFound, apperrors.ErrNotFound},
		{fieldsDomain.ErrKeyReferenceUnresolved, apperrors.ErrInvalidInput},
		{fieldsDomain.ErrUnsupportedFieldValue, apperrors.ErrInvalidInput},
		{fieldsDomain.ErrRecordKeyNotWrapped, apperrors.ErrInvalidInput},
		{fieldsDomain.ErrRegistryFrozen, apperrors.ErrConflict},
		{cryptoDomain.ErrUnsupportedCipher, apperrors.ErrInvalidInput},
		{cryptoDomain.ErrInvalidKey, apperrors.ErrInvalidInput},
		{cryptoDomain.ErrMasterKeyNotSet, apperrors.ErrInvalidInput},
		{cryptoDomain.ErrDecryptionFailed, apperrors.ErrIntegrity},
		{cryptoDomain.ErrKMSDecryptionFailed, apperrors.ErrIntegrity},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			for _, category := range categories {
				assert.Equal(t, category == tt.category, errors.Is(tt.err, category), category.Error())
			}
		})
	}

	t.Run("rotation failure has no category", func(t *testing.T) {
		for _, category := range categories {
			assert.NotErrorIs(t, fieldsDomain.ErrRotationFailed, category)
		}
	})
}
