// Package domain defines the cryptographic primitives catalogue and master key handling
// for per-field envelope encryption.
//
// The key hierarchy is two levels deep: a master key wraps one data key per record,
// and each data key encrypts that record's fields. Keys travel as hex strings; the
// raw bytes only exist transiently inside the cipher engine.
package domain

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"strings"
)

// KMSKeeper is the subset of a gocloud.dev secrets.Keeper used for master keys.
type KMSKeeper interface {
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
	Close() error
}

// KeeperOpener opens a KMS keeper for a provider URI.
type KeeperOpener interface {
	OpenKeeper(ctx context.Context, keyURI string) (KMSKeeper, error)
}

// LoadMasterKey returns the hex master key from its configured form.
//
// Without a keyURI, raw is taken as the hex key itself. With a keyURI, raw is the
// base64 ciphertext produced by the KMS keeper (see the create-master-key command)
// and is decrypted through opener. Length validation is left to the cipher engine,
// which knows the configured algorithm's key size.
//
// Returns ErrMasterKeyNotSet when raw is empty.
func LoadMasterKey(
	ctx context.Context,
	raw, keyURI string,
	opener KeeperOpener,
	logger *slog.Logger,
) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrMasterKeyNotSet
	}

	if keyURI == "" {
		return strings.ToLower(raw), nil
	}

	ciphertext, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidMasterKeyBase64, err)
	}

	keeper, err := opener.OpenKeeper(ctx, keyURI)
	if err != nil {
		return "", err
	}
	defer func() {
		if closeErr := keeper.Close(); closeErr != nil {
			logger.Warn("failed to close kms keeper", slog.Any("error", closeErr))
		}
	}()

	plaintext, err := keeper.Decrypt(ctx, ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrKMSDecryptionFailed, err)
	}
	defer Zero(plaintext)

	logger.Debug("master key decrypted with kms")

	return strings.ToLower(strings.TrimSpace(string(plaintext))), nil
}

// Zero securely overwrites a byte slice with zeros to clear sensitive data from memory.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
