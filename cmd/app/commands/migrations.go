package commands

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/allisson/encrypted-fields/migrations"
)

// migrationsDir returns the embedded directory holding the driver's migrations.
func migrationsDir(driver string) (string, error) {
	switch driver {
	case "postgres":
		return "postgresql", nil
	case "mysql":
		return "mysql", nil
	default:
		return "", fmt.Errorf("unsupported database driver: %s", driver)
	}
}

func migrationSource(driver string) (source.Driver, error) {
	dir, err := migrationsDir(driver)
	if err != nil {
		return nil, err
	}
	return iofs.New(migrations.FS, dir)
}

// RunMigrations creates the record_keys table and applies any later schema changes.
// Returns nil when the schema is already current.
func RunMigrations(logger *slog.Logger, dbDriver, dbConnectionString string) error {
	logger.Info("running database migrations", slog.String("driver", dbDriver))

	src, err := migrationSource(dbDriver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	// golang-migrate expects the mysql:// scheme, the runtime driver takes a bare DSN.
	databaseURL := dbConnectionString
	if dbDriver == "mysql" {
		databaseURL = "mysql://" + dbConnectionString
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, databaseURL)
	if err != nil {
		_ = src.Close()
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer closeMigrate(m, logger)

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("migrations completed successfully")
	return nil
}
