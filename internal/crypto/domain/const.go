package domain

import (
	"sort"
	"strings"
)

// Algorithm names an authenticated cipher in the engine catalogue.
//
// All supported algorithms provide Authenticated Encryption with Associated Data (AEAD),
// so every ciphertext carries a 16-byte tag that is verified before plaintext is released.
type Algorithm string

const (
	// AES256GCM is AES with a 256-bit key in Galois/Counter Mode. It is the default.
	AES256GCM Algorithm = "aes-256-gcm"

	// AES192GCM is AES with a 192-bit key in Galois/Counter Mode.
	AES192GCM Algorithm = "aes-192-gcm"

	// AES128GCM is AES with a 128-bit key in Galois/Counter Mode.
	AES128GCM Algorithm = "aes-128-gcm"

	// ChaCha20Poly1305 is the ChaCha20 stream cipher with a Poly1305 authenticator.
	// Useful on hosts without AES hardware acceleration.
	ChaCha20Poly1305 Algorithm = "chacha20-poly1305"
)

// DefaultAlgorithm is used when no cipher is configured.
const DefaultAlgorithm = AES256GCM

// TagSize is the authentication tag length in bytes for every supported algorithm.
const TagSize = 16

// CipherSpec describes the key and nonce lengths required by an algorithm.
type CipherSpec struct {
	Algorithm Algorithm
	KeySize   int // bytes
	NonceSize int // bytes
}

var catalogue = map[Algorithm]CipherSpec{
	AES256GCM:        {Algorithm: AES256GCM, KeySize: 32, NonceSize: 12},
	AES192GCM:        {Algorithm: AES192GCM, KeySize: 24, NonceSize: 12},
	AES128GCM:        {Algorithm: AES128GCM, KeySize: 16, NonceSize: 12},
	ChaCha20Poly1305: {Algorithm: ChaCha20Poly1305, KeySize: 32, NonceSize: 12},
}

// LookupCipher returns the spec for alg or ErrUnsupportedCipher.
func LookupCipher(alg Algorithm) (CipherSpec, error) {
	spec, ok := catalogue[alg]
	if !ok {
		return CipherSpec{}, ErrUnsupportedCipher
	}
	return spec, nil
}

// ParseAlgorithm normalizes s and validates it against the catalogue.
// An empty string selects DefaultAlgorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return DefaultAlgorithm, nil
	}
	alg := Algorithm(s)
	if _, err := LookupCipher(alg); err != nil {
		return "", err
	}
	return alg, nil
}

// SupportedAlgorithms lists the catalogue in lexical order.
func SupportedAlgorithms() []Algorithm {
	algs := make([]Algorithm, 0, len(catalogue))
	for alg := range catalogue {
		algs = append(algs, alg)
	}
	sort.Slice(algs, func(i, j int) bool { return algs[i] < algs[j] })
	return algs
}
