// Package database provides database connection management and transaction propagation.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
)

// Config holds database configuration settings.
type Config struct {
	Driver             string
	ConnectionString   string
	MaxOpenConnections int
	MaxIdleConnections int
	ConnMaxLifetime    time.Duration
}

// Connect opens the pool and pings it. MySQL connection strings must enable parseTime
// so timestamp columns scan into time.Time.
func Connect(ctx context.Context, cfg Config) (*sql.DB, error) {
	if cfg.Driver == "mysql" {
		dsn, err := mysql.ParseDSN(cfg.ConnectionString)
		if err != nil {
			return nil, fmt.Errorf("failed to parse mysql connection string: %w", err)
		}
		if !dsn.ParseTime {
			return nil, fmt.Errorf("mysql connection string must set parseTime=true")
		}
	}

	db, err := sql.Open(cfg.Driver, cfg.ConnectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConnections)
	db.SetMaxIdleConns(cfg.MaxIdleConnections)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
