package service

import (
	"encoding/base64"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/encrypted-fields/internal/crypto/domain"
	apperrors "github.com/allisson/encrypted-fields/internal/errors"
)

func newTestEngine(t *testing.T, alg cryptoDomain.Algorithm) *CipherEngine {
	t.Helper()
	probe, err := NewCipherEngine(NewAEADManager(), alg, "")
	require.NoError(t, err)
	masterKey, err := probe.GenerateKey()
	require.NoError(t, err)

	engine, err := NewCipherEngine(NewAEADManager(), alg, masterKey)
	require.NoError(t, err)
	return engine
}

func TestNewCipherEngine(t *testing.T) {
	t.Run("default algorithm", func(t *testing.T) {
		engine, err := NewCipherEngine(NewAEADManager(), cryptoDomain.DefaultAlgorithm, "")
		require.NoError(t, err)
		assert.Equal(t, cryptoDomain.AES256GCM, engine.Algorithm())
		assert.Equal(t, 32, engine.KeyLength())
	})

	t.Run("unsupported cipher", func(t *testing.T) {
		engine, err := NewCipherEngine(NewAEADManager(), "aes-256-cbc", "")
		assert.Nil(t, engine)
		assert.ErrorIs(t, err, cryptoDomain.ErrUnsupportedCipher)
		assert.Contains(t, err.Error(), "aes-256-cbc")
	})
}

func TestCipherEngine_GenerateKey(t *testing.T) {
	for _, alg := range cryptoDomain.SupportedAlgorithms() {
		t.Run(string(alg), func(t *testing.T) {
			engine := newTestEngine(t, alg)

			key, err := engine.GenerateKey()
			require.NoError(t, err)

			raw, err := hex.DecodeString(key)
			require.NoError(t, err)
			assert.Len(t, raw, engine.KeyLength())

			other, err := engine.GenerateKey()
			require.NoError(t, err)
			assert.NotEqual(t, key, other)
		})
	}
}

func TestCipherEngine_RoundTrip(t *testing.T) {
	inputs := [][]byte{
		[]byte("h"),
		[]byte("hello"),
		[]byte(strings.Repeat("long field value ", 200)),
		{0x00, 0xff, 0x10, 0x80},
	}

	for _, alg := range cryptoDomain.SupportedAlgorithms() {
		t.Run(string(alg), func(t *testing.T) {
			engine := newTestEngine(t, alg)
			key, err := engine.GenerateKey()
			require.NoError(t, err)

			for _, plaintext := range inputs {
				envelope, err := engine.Encrypt(plaintext, key)
				require.NoError(t, err)

				raw, err := base64.StdEncoding.DecodeString(envelope)
				require.NoError(t, err)
				assert.Len(t, raw, 12+cryptoDomain.TagSize+len(plaintext))

				decrypted, err := engine.Decrypt(envelope, key)
				require.NoError(t, err)
				assert.Equal(t, plaintext, decrypted)
			}
		})
	}
}

func TestCipherEngine_NonceUniqueness(t *testing.T) {
	engine := newTestEngine(t, cryptoDomain.AES256GCM)
	key, err := engine.GenerateKey()
	require.NoError(t, err)

	seen := make(map[string]struct{})
	for i := 0; i < 64; i++ {
		envelope, err := engine.Encrypt([]byte("same plaintext"), key)
		require.NoError(t, err)
		_, dup := seen[envelope]
		require.False(t, dup, "envelope repeated")
		seen[envelope] = struct{}{}
	}
}

func TestCipherEngine_TamperDetection(t *testing.T) {
	engine := newTestEngine(t, cryptoDomain.AES256GCM)
	key, err := engine.GenerateKey()
	require.NoError(t, err)

	envelope, err := engine.Encrypt([]byte("tamper me"), key)
	require.NoError(t, err)
	raw, err := base64.StdEncoding.DecodeString(envelope)
	require.NoError(t, err)

	for i := range raw {
		tampered := make([]byte, len(raw))
		copy(tampered, raw)
		tampered[i] ^= 0x01

		plaintext, err := engine.Decrypt(base64.StdEncoding.EncodeToString(tampered), key)
		assert.Nil(t, plaintext, "byte %d", i)
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed, "byte %d", i)
		assert.ErrorIs(t, err, apperrors.ErrIntegrity)
	}

	t.Run("wrong key", func(t *testing.T) {
		otherKey, err := engine.GenerateKey()
		require.NoError(t, err)
		_, err = engine.Decrypt(envelope, otherKey)
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})

	t.Run("not base64", func(t *testing.T) {
		_, err := engine.Decrypt("%%%not-base64%%%", key)
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})

	t.Run("truncated", func(t *testing.T) {
		_, err := engine.Decrypt(base64.StdEncoding.EncodeToString(raw[:20]), key)
		assert.ErrorIs(t, err, cryptoDomain.ErrDecryptionFailed)
	})
}

func TestCipherEngine_KeyValidation(t *testing.T) {
	engine := newTestEngine(t, cryptoDomain.AES256GCM)

	tests := []struct {
		name string
		key  string
	}{
		{"eight byte key", "0001020304050607"},
		{"not hex", strings.Repeat("zz", 32)},
		{"odd length", strings.Repeat("a", 63)},
		{"empty", ""},
		{"too long", strings.Repeat("ab", 33)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := engine.Encrypt([]byte("data"), tt.key)
			assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKey)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)

			_, err = engine.Decrypt("AAAA", tt.key)
			assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKey)

			assert.ErrorIs(t, engine.ValidateKey(tt.key), cryptoDomain.ErrInvalidKey)
		})
	}

	t.Run("aes-128 rejects 32 byte key", func(t *testing.T) {
		aes128 := newTestEngine(t, cryptoDomain.AES128GCM)
		key, err := engine.GenerateKey()
		require.NoError(t, err)
		_, err = aes128.Encrypt([]byte("data"), key)
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKey)
	})
}

func TestCipherEngine_EmptyInput(t *testing.T) {
	engine := newTestEngine(t, cryptoDomain.AES256GCM)
	key, err := engine.GenerateKey()
	require.NoError(t, err)

	_, err = engine.Encrypt(nil, key)
	assert.ErrorIs(t, err, cryptoDomain.ErrEmptyInput)

	_, err = engine.Encrypt([]byte{}, key)
	assert.ErrorIs(t, err, cryptoDomain.ErrEmptyInput)

	_, err = engine.Decrypt("", key)
	assert.ErrorIs(t, err, cryptoDomain.ErrEmptyInput)
}

func TestCipherEngine_MasterKey(t *testing.T) {
	engine := newTestEngine(t, cryptoDomain.ChaCha20Poly1305)

	envelope, err := engine.EncryptWithMasterKey([]byte("wrapped data key"))
	require.NoError(t, err)

	plaintext, err := engine.DecryptWithMasterKey(envelope)
	require.NoError(t, err)
	assert.Equal(t, []byte("wrapped data key"), plaintext)

	t.Run("no master key configured", func(t *testing.T) {
		bare, err := NewCipherEngine(NewAEADManager(), cryptoDomain.AES256GCM, "")
		require.NoError(t, err)

		_, err = bare.EncryptWithMasterKey([]byte("x"))
		assert.ErrorIs(t, err, cryptoDomain.ErrMasterKeyNotSet)

		_, err = bare.DecryptWithMasterKey(envelope)
		assert.ErrorIs(t, err, cryptoDomain.ErrMasterKeyNotSet)
	})
}
