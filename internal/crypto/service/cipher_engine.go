package service

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	cryptoDomain "github.com/allisson/encrypted-fields/internal/crypto/domain"
)

// CipherEngine is the stateless authenticated-encryption primitive behind field encryption.
//
// Keys are exchanged as hex strings whose decoded length must equal the algorithm's key
// size. Every Encrypt draws a fresh nonce, and the result is the base64 encoding of
//
//	nonce || tag (16 bytes) || ciphertext
//
// The engine holds the process master key for the *WithMasterKey convenience forms; the
// master key may be empty, in which case those forms fail with ErrMasterKeyNotSet.
type CipherEngine struct {
	aeadManager AEADManager
	spec        cryptoDomain.CipherSpec
	masterKey   string
}

// NewCipherEngine validates alg against the catalogue and returns an engine for it.
// Returns ErrUnsupportedCipher for unknown algorithms.
func NewCipherEngine(
	aeadManager AEADManager,
	alg cryptoDomain.Algorithm,
	masterKey string,
) (*CipherEngine, error) {
	spec, err := cryptoDomain.LookupCipher(alg)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, alg)
	}

	return &CipherEngine{
		aeadManager: aeadManager,
		spec:        spec,
		masterKey:   masterKey,
	}, nil
}

// Algorithm returns the configured algorithm.
func (e *CipherEngine) Algorithm() cryptoDomain.Algorithm {
	return e.spec.Algorithm
}

// KeyLength returns the required key length in bytes.
func (e *CipherEngine) KeyLength() int {
	return e.spec.KeySize
}

// GenerateKey returns a random key of KeyLength bytes, hex-encoded.
func (e *CipherEngine) GenerateKey() (string, error) {
	key := make([]byte, e.spec.KeySize)
	defer cryptoDomain.Zero(key)

	if _, err := rand.Read(key); err != nil {
		return "", fmt.Errorf("failed to generate key: %w", err)
	}

	return hex.EncodeToString(key), nil
}

// Encrypt seals plaintext under hexKey and returns the base64 envelope.
func (e *CipherEngine) Encrypt(plaintext []byte, hexKey string) (string, error) {
	if len(plaintext) == 0 {
		return "", cryptoDomain.ErrEmptyInput
	}

	aead, err := e.cipherFor(hexKey)
	if err != nil {
		return "", err
	}

	sealed, nonce, err := aead.Encrypt(plaintext, nil)
	if err != nil {
		return "", err
	}

	body := len(sealed) - cryptoDomain.TagSize
	envelope := make([]byte, 0, len(nonce)+len(sealed))
	envelope = append(envelope, nonce...)
	envelope = append(envelope, sealed[body:]...)
	envelope = append(envelope, sealed[:body]...)

	return base64.StdEncoding.EncodeToString(envelope), nil
}

// Decrypt opens an envelope produced by Encrypt.
// Malformed envelopes and tag mismatches both yield ErrDecryptionFailed.
func (e *CipherEngine) Decrypt(envelope, hexKey string) ([]byte, error) {
	if envelope == "" {
		return nil, cryptoDomain.ErrEmptyInput
	}

	aead, err := e.cipherFor(hexKey)
	if err != nil {
		return nil, err
	}

	data, err := base64.StdEncoding.DecodeString(envelope)
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}

	header := e.spec.NonceSize + cryptoDomain.TagSize
	if len(data) < header {
		return nil, cryptoDomain.ErrDecryptionFailed
	}

	nonce := data[:e.spec.NonceSize]
	tag := data[e.spec.NonceSize:header]

	sealed := make([]byte, 0, len(data)-e.spec.NonceSize)
	sealed = append(sealed, data[header:]...)
	sealed = append(sealed, tag...)

	plaintext, err := aead.Decrypt(sealed, nonce, nil)
	if err != nil {
		return nil, cryptoDomain.ErrDecryptionFailed
	}

	return plaintext, nil
}

// EncryptWithMasterKey seals plaintext under the configured master key.
func (e *CipherEngine) EncryptWithMasterKey(plaintext []byte) (string, error) {
	if e.masterKey == "" {
		return "", cryptoDomain.ErrMasterKeyNotSet
	}
	return e.Encrypt(plaintext, e.masterKey)
}

// DecryptWithMasterKey opens an envelope sealed under the configured master key.
func (e *CipherEngine) DecryptWithMasterKey(envelope string) ([]byte, error) {
	if e.masterKey == "" {
		return nil, cryptoDomain.ErrMasterKeyNotSet
	}
	return e.Decrypt(envelope, e.masterKey)
}

// ValidateKey reports whether hexKey is usable with the configured algorithm.
func (e *CipherEngine) ValidateKey(hexKey string) error {
	key, err := e.decodeKey(hexKey)
	if err != nil {
		return err
	}
	cryptoDomain.Zero(key)
	return nil
}

func (e *CipherEngine) decodeKey(hexKey string) ([]byte, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil {
		return nil, fmt.Errorf("%w: not hex encoded", cryptoDomain.ErrInvalidKey)
	}
	if len(key) != e.spec.KeySize {
		cryptoDomain.Zero(key)
		return nil, fmt.Errorf(
			"%w: %s requires %d bytes, got %d",
			cryptoDomain.ErrInvalidKey,
			e.spec.Algorithm,
			e.spec.KeySize,
			len(key),
		)
	}
	return key, nil
}

func (e *CipherEngine) cipherFor(hexKey string) (AEAD, error) {
	key, err := e.decodeKey(hexKey)
	if err != nil {
		return nil, err
	}
	defer cryptoDomain.Zero(key)

	return e.aeadManager.CreateCipher(key, e.spec.Algorithm)
}
