package service

import (
	cryptoDomain "github.com/allisson/encrypted-fields/internal/crypto/domain"
)

// AEADManagerService builds AEAD instances from raw keys.
type AEADManagerService struct{}

// NewAEADManager creates a new AEADManagerService.
func NewAEADManager() *AEADManagerService {
	return &AEADManagerService{}
}

// CreateCipher returns ErrUnsupportedCipher for unknown algorithms and ErrInvalidKey
// when the key does not have the algorithm's length.
func (am *AEADManagerService) CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error) {
	spec, err := cryptoDomain.LookupCipher(alg)
	if err != nil {
		return nil, err
	}
	if len(key) != spec.KeySize {
		return nil, cryptoDomain.ErrInvalidKey
	}

	if alg == cryptoDomain.ChaCha20Poly1305 {
		return newChaCha20Poly1305(key)
	}
	return newAESGCM(alg, key)
}
