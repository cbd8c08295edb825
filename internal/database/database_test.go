package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestConnect_Error(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		message string
	}{
		{
			name:    "unknown driver",
			cfg:     Config{Driver: "invalid", ConnectionString: "invalid"},
			message: "sql: unknown driver",
		},
		{
			name:    "mysql without parseTime",
			cfg:     Config{Driver: "mysql", ConnectionString: "user:pass@tcp(localhost:3306)/db"},
			message: "parseTime=true",
		},
		{
			name:    "malformed mysql connection string",
			cfg:     Config{Driver: "mysql", ConnectionString: "user:pass@tcp(localhost:3306"},
			message: "failed to parse mysql connection string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.MaxOpenConnections = 10
			tt.cfg.MaxIdleConnections = 5
			tt.cfg.ConnMaxLifetime = time.Hour

			db, err := Connect(context.Background(), tt.cfg)
			assert.Error(t, err)
			assert.Nil(t, db)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
