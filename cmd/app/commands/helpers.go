// Package commands holds the CLI actions. Each Run function takes its collaborators as
// interfaces and writes user-facing output to the given writer.
package commands

import (
	"context"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"

	"github.com/allisson/encrypted-fields/internal/app"
)

// CloseContainer dumps the metrics textfile and then releases the container. Failures are
// logged because the command result has already been decided.
func CloseContainer(ctx context.Context, container *app.Container) {
	logger := container.Logger()
	if err := container.FlushMetrics(); err != nil {
		logger.Error("failed to flush metrics", slog.Any("error", err))
	}
	if err := container.Shutdown(ctx); err != nil {
		logger.Error("failed to shutdown container", slog.Any("error", err))
	}
}

func closeMigrate(m *migrate.Migrate, logger *slog.Logger) {
	sourceErr, databaseErr := m.Close()
	if sourceErr != nil || databaseErr != nil {
		logger.Error(
			"failed to close migrations",
			slog.Any("source_error", sourceErr),
			slog.Any("database_error", databaseErr),
		)
	}
}
