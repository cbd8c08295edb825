// Package service provides the cryptographic services for per-field envelope encryption:
// AEAD ciphers (AES-GCM, ChaCha20-Poly1305), the cipher engine that speaks hex keys and
// base64 envelopes, and KMS keeper access for master keys.
package service

import (
	cryptoDomain "github.com/allisson/encrypted-fields/internal/crypto/domain"
)

// AEAD defines the interface for Authenticated Encryption with Associated Data.
type AEAD interface {
	// Encrypt encrypts plaintext with optional AAD and returns ciphertext (tag appended) and nonce.
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)

	// Decrypt decrypts ciphertext (tag appended) using the provided nonce and AAD.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)
}

// AEADManager defines the interface for creating AEAD cipher instances.
type AEADManager interface {
	// CreateCipher creates an AEAD cipher instance for the specified algorithm.
	CreateCipher(key []byte, alg cryptoDomain.Algorithm) (AEAD, error)
}

// Cipher is the engine contract consumed by the field codec and the rotation procedure.
// Keys are hex strings; ciphertexts are base64 envelopes of nonce || tag || ciphertext.
type Cipher interface {
	// KeyLength returns the key size in bytes required by the configured algorithm.
	KeyLength() int

	// GenerateKey returns a fresh random key of the configured algorithm's length, hex-encoded.
	GenerateKey() (string, error)

	// Encrypt seals plaintext under hexKey.
	Encrypt(plaintext []byte, hexKey string) (string, error)

	// Decrypt opens an envelope produced by Encrypt.
	Decrypt(envelope, hexKey string) ([]byte, error)

	// EncryptWithMasterKey seals plaintext under the process master key.
	EncryptWithMasterKey(plaintext []byte) (string, error)

	// DecryptWithMasterKey opens an envelope sealed under the process master key.
	DecryptWithMasterKey(envelope string) ([]byte, error)
}
