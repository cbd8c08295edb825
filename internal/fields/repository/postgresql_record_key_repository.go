// Package repository implements persistence for per-record data keys and for
// table-backed records.
//
// Record keys live in the record_keys table, one row per (entity_type, entity_identity),
// and are only ever stored wrapped under the master key. Each repository has a PostgreSQL
// and a MySQL implementation.
//
// # Transaction Support
//
// All repositories support transaction-aware operations via database.GetTx(), so key
// rotation can update every key and record inside a single transaction.
//
//	repo := repository.NewPostgreSQLRecordKeyRepository(db)
//	err := txManager.WithTx(ctx, func(txCtx context.Context) error {
//	    return repo.Update(txCtx, key)
//	})
package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/allisson/encrypted-fields/internal/database"
	apperrors "github.com/allisson/encrypted-fields/internal/errors"
	fieldsDomain "github.com/allisson/encrypted-fields/internal/fields/domain"
)

const recordKeyColumns = `id, entity_type, entity_identity, wrapped_key_material, created_at, updated_at`

// PostgreSQLRecordKeyRepository implements record key persistence for PostgreSQL.
//
// Database schema requirements:
//   - id: BIGSERIAL PRIMARY KEY
//   - entity_type: VARCHAR(255)
//   - entity_identity: BIGINT
//   - wrapped_key_material: TEXT (base64 envelope)
//   - created_at, updated_at: TIMESTAMP WITH TIME ZONE
//   - UNIQUE (entity_type, entity_identity)
type PostgreSQLRecordKeyRepository struct {
	db *sql.DB
}

// Create inserts a wrapped record key and sets its ID.
func (p *PostgreSQLRecordKeyRepository) Create(ctx context.Context, key *fieldsDomain.RecordKey) error {
	if !key.IsWrapped {
		return fieldsDomain.ErrRecordKeyNotWrapped
	}

	querier := database.GetTx(ctx, p.db)

	query := `INSERT INTO record_keys (entity_type, entity_identity, wrapped_key_material, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5) RETURNING id`

	err := querier.QueryRowContext(
		ctx,
		query,
		key.RecordType,
		key.RecordIdentity,
		key.KeyMaterial,
		key.CreatedAt,
		key.UpdatedAt,
	).Scan(&key.ID)
	if err != nil {
		return apperrors.Wrap(err, "failed to create record key")
	}
	return nil
}

// Update replaces the wrapped material and identity of an existing record key.
func (p *PostgreSQLRecordKeyRepository) Update(ctx context.Context, key *fieldsDomain.RecordKey) error {
	if !key.IsWrapped {
		return fieldsDomain.ErrRecordKeyNotWrapped
	}

	querier := database.GetTx(ctx, p.db)
	key.UpdatedAt = time.Now().UTC()

	query := `UPDATE record_keys
			  SET entity_type = $1,
				  entity_identity = $2,
				  wrapped_key_material = $3,
				  updated_at = $4
			  WHERE id = $5`

	result, err := querier.ExecContext(
		ctx,
		query,
		key.RecordType,
		key.RecordIdentity,
		key.KeyMaterial,
		key.UpdatedAt,
		key.ID,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to update record key")
	}

	return checkAffected(result, "failed to update record key")
}

// GetByIdentity returns the wrapped key of a record, or ErrRecordKeyNotFound.
func (p *PostgreSQLRecordKeyRepository) GetByIdentity(
	ctx context.Context,
	recordType string,
	identity int64,
) (*fieldsDomain.RecordKey, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + recordKeyColumns + ` FROM record_keys WHERE entity_type = $1 AND entity_identity = $2`

	key, err := scanRecordKey(querier.QueryRowContext(ctx, query, recordType, identity))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fieldsDomain.ErrRecordKeyNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get record key")
	}
	return key, nil
}

// List returns every record key ordered by id. With forUpdate the rows are locked until
// the surrounding transaction ends.
func (p *PostgreSQLRecordKeyRepository) List(
	ctx context.Context,
	forUpdate bool,
) ([]*fieldsDomain.RecordKey, error) {
	querier := database.GetTx(ctx, p.db)

	query := `SELECT ` + recordKeyColumns + ` FROM record_keys ORDER BY id ASC`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	return listRecordKeys(ctx, querier, query)
}

// NewPostgreSQLRecordKeyRepository creates a new PostgreSQL record key repository instance.
func NewPostgreSQLRecordKeyRepository(db *sql.DB) *PostgreSQLRecordKeyRepository {
	return &PostgreSQLRecordKeyRepository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecordKey(row rowScanner) (*fieldsDomain.RecordKey, error) {
	var key fieldsDomain.RecordKey
	err := row.Scan(
		&key.ID,
		&key.RecordType,
		&key.RecordIdentity,
		&key.KeyMaterial,
		&key.CreatedAt,
		&key.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	key.IsWrapped = true
	return &key, nil
}

func listRecordKeys(ctx context.Context, querier database.Querier, query string) ([]*fieldsDomain.RecordKey, error) {
	rows, err := querier.QueryContext(ctx, query)
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list record keys")
	}
	defer func() {
		_ = rows.Close()
	}()

	var keys []*fieldsDomain.RecordKey
	for rows.Next() {
		key, err := scanRecordKey(rows)
		if err != nil {
			return nil, apperrors.Wrap(err, "failed to scan record key")
		}
		keys = append(keys, key)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.Wrap(err, "failed to list record keys")
	}

	return keys, nil
}

func checkAffected(result sql.Result, message string) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return apperrors.Wrap(err, message)
	}
	if affected == 0 {
		return apperrors.Wrap(apperrors.ErrNotFound, message)
	}
	return nil
}
