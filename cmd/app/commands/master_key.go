package commands

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"

	cryptoDomain "github.com/allisson/encrypted-fields/internal/crypto/domain"
	cryptoService "github.com/allisson/encrypted-fields/internal/crypto/service"
)

// KeyGenerator produces random hex keys sized for the configured cipher.
type KeyGenerator interface {
	Algorithm() cryptoDomain.Algorithm
	GenerateKey() (string, error)
}

// RunCreateMasterKey prints a fresh hex master key for the configured cipher.
//
// With kmsKeyURI set, the key is encrypted through the KMS keeper and printed as base64
// ciphertext together with KMS_KEY_URI, which is the form LoadMasterKey expects.
// For local development, use kmsKeyURI="base64key://<32-byte-base64-key>".
//
// Output format:
//   - MASTER_KEY="<hex>" or MASTER_KEY="<base64-encoded-kms-ciphertext>"
//   - KMS_KEY_URI="<uri>" in KMS mode
func RunCreateMasterKey(
	ctx context.Context,
	generator KeyGenerator,
	kmsService cryptoService.KMSService,
	logger *slog.Logger,
	writer io.Writer,
	kmsKeyURI string,
) error {
	masterKey, err := generator.GenerateKey()
	if err != nil {
		return fmt.Errorf("failed to generate master key: %w", err)
	}

	if kmsKeyURI == "" {
		_, _ = fmt.Fprintln(writer, "# Master Key Configuration")
		_, _ = fmt.Fprintln(writer, "# Copy these environment variables to your .env file or secrets manager")
		_, _ = fmt.Fprintln(writer)
		_, _ = fmt.Fprintf(writer, "CIPHER=\"%s\"\n", generator.Algorithm())
		_, _ = fmt.Fprintf(writer, "MASTER_KEY=\"%s\"\n", masterKey)
		logger.Info("master key generated", slog.String("cipher", string(generator.Algorithm())))
		return nil
	}

	plaintext := []byte(masterKey)
	defer cryptoDomain.Zero(plaintext)

	keeper, err := kmsService.OpenKeeper(ctx, kmsKeyURI)
	if err != nil {
		return fmt.Errorf("failed to open KMS keeper: %w", err)
	}
	defer func() {
		if closeErr := keeper.Close(); closeErr != nil {
			logger.Warn("failed to close kms keeper", slog.Any("error", closeErr))
		}
	}()

	ciphertext, err := keeper.Encrypt(ctx, plaintext)
	if err != nil {
		return fmt.Errorf("failed to encrypt master key with KMS: %w", err)
	}

	encodedKey := base64.StdEncoding.EncodeToString(ciphertext)

	_, _ = fmt.Fprintln(writer, "# Master Key Configuration (KMS Mode)")
	_, _ = fmt.Fprintln(writer, "# Copy these environment variables to your .env file or secrets manager")
	_, _ = fmt.Fprintln(writer)
	_, _ = fmt.Fprintf(writer, "CIPHER=\"%s\"\n", generator.Algorithm())
	_, _ = fmt.Fprintf(writer, "KMS_KEY_URI=\"%s\"\n", kmsKeyURI)
	_, _ = fmt.Fprintf(writer, "MASTER_KEY=\"%s\"\n", encodedKey)
	logger.Info("master key generated",
		slog.String("cipher", string(generator.Algorithm())),
		slog.String("kms_key_uri", kmsKeyURI),
	)

	return nil
}
