package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/secrets"

	cryptoDomain "github.com/allisson/encrypted-fields/internal/crypto/domain"
)

// generateLocalSecretsURI generates a base64key:// URI for testing.
func generateLocalSecretsURI(t *testing.T) string {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return "base64key://" + base64.URLEncoding.EncodeToString(key)
}

func TestKMSService_OpenKeeper(t *testing.T) {
	ctx := context.Background()
	kmsService := NewKMSService()

	t.Run("Success_LocalSecrets", func(t *testing.T) {
		keeper, err := kmsService.OpenKeeper(ctx, generateLocalSecretsURI(t))
		require.NoError(t, err)
		defer func() { assert.NoError(t, keeper.Close()) }()

		_, ok := keeper.(*secrets.Keeper)
		assert.True(t, ok, "keeper should be *secrets.Keeper")
	})

	t.Run("Error_UnsupportedScheme", func(t *testing.T) {
		keeper, err := kmsService.OpenKeeper(ctx, "invalid://uri")
		assert.Nil(t, keeper)
		assert.ErrorContains(t, err, `unsupported scheme "invalid"`)
	})

	t.Run("Error_MalformedLocalKey", func(t *testing.T) {
		keeper, err := kmsService.OpenKeeper(ctx, "base64key://not-base64!")
		assert.Nil(t, keeper)
		assert.ErrorContains(t, err, "open base64key keeper")
	})
}

func TestKMSService_MasterKeyRoundTrip(t *testing.T) {
	ctx := context.Background()
	kmsService := NewKMSService()
	keyURI := generateLocalSecretsURI(t)

	engine, err := NewCipherEngine(NewAEADManager(), cryptoDomain.AES256GCM, "")
	require.NoError(t, err)
	masterKey, err := engine.GenerateKey()
	require.NoError(t, err)

	keeper, err := kmsService.OpenKeeper(ctx, keyURI)
	require.NoError(t, err)
	ciphertext, err := keeper.Encrypt(ctx, []byte(masterKey))
	require.NoError(t, err)
	require.NoError(t, keeper.Close())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	loaded, err := cryptoDomain.LoadMasterKey(
		ctx,
		base64.StdEncoding.EncodeToString(ciphertext),
		keyURI,
		kmsService,
		logger,
	)
	require.NoError(t, err)
	assert.Equal(t, masterKey, loaded)

	_, err = cryptoDomain.LoadMasterKey(
		ctx,
		base64.StdEncoding.EncodeToString(ciphertext),
		generateLocalSecretsURI(t),
		kmsService,
		logger,
	)
	assert.ErrorIs(t, err, cryptoDomain.ErrKMSDecryptionFailed)
}
