package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	fieldsDomain "github.com/allisson/encrypted-fields/internal/fields/domain"
	fieldsUsecase "github.com/allisson/encrypted-fields/internal/fields/usecase"
)

// ErrNoRotationSource is returned when neither a database key nor --generate-new-key is given.
var ErrNoRotationSource = errors.New("no database key provided and not generating a new key")

// RotateKeysOptions holds the rotate-keys flags.
type RotateKeysOptions struct {
	DatabaseKey     string
	DatabaseKeyFile string
	GenerateNewKey  bool
}

// rotateInput resolves the flags into a rotation request. The key file wins over the inline key.
func (o RotateKeysOptions) rotateInput() (fieldsDomain.RotateInput, error) {
	input := fieldsDomain.RotateInput{
		DatabaseKey:    strings.TrimSpace(o.DatabaseKey),
		GenerateNewKey: o.GenerateNewKey,
	}

	if o.DatabaseKeyFile != "" {
		data, err := os.ReadFile(o.DatabaseKeyFile)
		if err != nil {
			return input, fmt.Errorf("database key file is not readable: %w", err)
		}
		input.DatabaseKey = strings.TrimSpace(string(data))
	}

	if input.DatabaseKey == "" && !input.GenerateNewKey {
		return input, ErrNoRotationSource
	}

	return input, nil
}

// RunRotateKeys re-encrypts every managed record inside one transaction.
//
// Stored data is read under the configured master key, or under the database key when one
// is given, and rewritten under the configured master key or a freshly generated one.
// A generated key is printed once and never persisted.
func RunRotateKeys(
	ctx context.Context,
	rotator fieldsUsecase.Rotator,
	logger *slog.Logger,
	writer io.Writer,
	opts RotateKeysOptions,
) error {
	input, err := opts.rotateInput()
	if err != nil {
		return err
	}

	logger.Info("rotating encryption keys",
		slog.Bool("database_key", input.DatabaseKey != ""),
		slog.Bool("generate_new_key", input.GenerateNewKey),
	)

	output, err := rotator.Rotate(ctx, input)
	if err != nil {
		_, _ = fmt.Fprintf(writer, "An error occurred while rotating encryption keys: %v\n", err)
		_, _ = fmt.Fprintln(writer, "All changes have been rolled back.")
		return fmt.Errorf("failed to rotate encryption keys: %w", err)
	}

	_, _ = fmt.Fprintln(writer, "Encryption keys have been rotated.")
	if output.NewMasterKey != "" {
		_, _ = fmt.Fprintf(writer, "Save the new key: %s\n", output.NewMasterKey)
	}

	logger.Info("encryption keys rotated",
		slog.Int("records", output.Rotated),
		slog.Bool("new_master_key", output.NewMasterKey != ""),
	)

	return nil
}
