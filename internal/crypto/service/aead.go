package service

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"

	cryptoDomain "github.com/allisson/encrypted-fields/internal/crypto/domain"
)

// sealer adapts a cipher.AEAD to the AEAD interface. Every Encrypt draws a fresh
// nonce from crypto/rand, and the tag is appended to the ciphertext.
type sealer struct {
	alg  cryptoDomain.Algorithm
	aead cipher.AEAD
}

func newAESGCM(alg cryptoDomain.Algorithm, key []byte) (*sealer, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%s: block cipher: %w", alg, err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%s: gcm mode: %w", alg, err)
	}
	return &sealer{alg: alg, aead: aead}, nil
}

func newChaCha20Poly1305(key []byte) (*sealer, error) {
	aead, err := chacha20poly1305.New(key)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", cryptoDomain.ChaCha20Poly1305, err)
	}
	return &sealer{alg: cryptoDomain.ChaCha20Poly1305, aead: aead}, nil
}

// Algorithm reports which algorithm backs the sealer.
func (s *sealer) Algorithm() cryptoDomain.Algorithm {
	return s.alg
}

func (s *sealer) Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error) {
	nonce = make([]byte, s.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, fmt.Errorf("%s: read nonce: %w", s.alg, err)
	}
	return s.aead.Seal(nil, nonce, plaintext, aad), nonce, nil
}

func (s *sealer) Decrypt(ciphertext, nonce, aad []byte) ([]byte, error) {
	if got, want := len(nonce), s.aead.NonceSize(); got != want {
		return nil, fmt.Errorf("%s: nonce is %d bytes, want %d", s.alg, got, want)
	}
	plaintext, err := s.aead.Open(nil, nonce, ciphertext, aad)
	if err != nil {
		return nil, fmt.Errorf("%s: open: %w", s.alg, err)
	}
	return plaintext, nil
}
