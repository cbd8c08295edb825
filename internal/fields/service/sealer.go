package service

import (
	cryptoService "github.com/allisson/encrypted-fields/internal/crypto/service"
	fieldsDomain "github.com/allisson/encrypted-fields/internal/fields/domain"
)

// RecordKeySealer performs the wrap and unwrap transitions of a RecordKey.
//
// Both transitions are guarded by IsWrapped, so calling either twice in a row is a no-op.
// On error the key is left unchanged.
type RecordKeySealer struct {
	cipher cryptoService.Cipher
}

// NewRecordKeySealer creates a sealer using the master key held by cipher.
func NewRecordKeySealer(cipher cryptoService.Cipher) *RecordKeySealer {
	return &RecordKeySealer{cipher: cipher}
}

// Wrap encrypts the key material under the configured master key.
func (s *RecordKeySealer) Wrap(key *fieldsDomain.RecordKey) error {
	if key.IsWrapped {
		return nil
	}
	envelope, err := s.cipher.EncryptWithMasterKey([]byte(key.KeyMaterial))
	if err != nil {
		return err
	}
	key.KeyMaterial = envelope
	key.IsWrapped = true
	return nil
}

// Unwrap decrypts the key material with the configured master key.
func (s *RecordKeySealer) Unwrap(key *fieldsDomain.RecordKey) error {
	if !key.IsWrapped {
		return nil
	}
	material, err := s.cipher.DecryptWithMasterKey(key.KeyMaterial)
	if err != nil {
		return err
	}
	key.KeyMaterial = string(material)
	key.IsWrapped = false
	return nil
}

// WrapWith encrypts the key material under an explicit wrapping key.
func (s *RecordKeySealer) WrapWith(key *fieldsDomain.RecordKey, wrappingKey string) error {
	if key.IsWrapped {
		return nil
	}
	envelope, err := s.cipher.Encrypt([]byte(key.KeyMaterial), wrappingKey)
	if err != nil {
		return err
	}
	key.KeyMaterial = envelope
	key.IsWrapped = true
	return nil
}

// UnwrapWith decrypts the key material with an explicit wrapping key.
func (s *RecordKeySealer) UnwrapWith(key *fieldsDomain.RecordKey, wrappingKey string) error {
	if !key.IsWrapped {
		return nil
	}
	material, err := s.cipher.Decrypt(key.KeyMaterial, wrappingKey)
	if err != nil {
		return err
	}
	key.KeyMaterial = string(material)
	key.IsWrapped = false
	return nil
}
