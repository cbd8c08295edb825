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

// MySQLRecordKeyRepository implements record key persistence for MySQL.
//
// Database schema requirements:
//   - id: BIGINT AUTO_INCREMENT PRIMARY KEY
//   - entity_type: VARCHAR(255)
//   - entity_identity: BIGINT
//   - wrapped_key_material: TEXT (base64 envelope)
//   - created_at, updated_at: DATETIME(6)
//   - UNIQUE (entity_type, entity_identity)
type MySQLRecordKeyRepository struct {
	db *sql.DB
}

// Create inserts a wrapped record key and sets its ID from LAST_INSERT_ID().
func (m *MySQLRecordKeyRepository) Create(ctx context.Context, key *fieldsDomain.RecordKey) error {
	if !key.IsWrapped {
		return fieldsDomain.ErrRecordKeyNotWrapped
	}

	querier := database.GetTx(ctx, m.db)

	query := `INSERT INTO record_keys (entity_type, entity_identity, wrapped_key_material, created_at, updated_at)
			  VALUES (?, ?, ?, ?, ?)`

	result, err := querier.ExecContext(
		ctx,
		query,
		key.RecordType,
		key.RecordIdentity,
		key.KeyMaterial,
		key.CreatedAt,
		key.UpdatedAt,
	)
	if err != nil {
		return apperrors.Wrap(err, "failed to create record key")
	}

	id, err := result.LastInsertId()
	if err != nil {
		return apperrors.Wrap(err, "failed to get record key id")
	}
	key.ID = id

	return nil
}

// Update replaces the wrapped material and identity of an existing record key.
func (m *MySQLRecordKeyRepository) Update(ctx context.Context, key *fieldsDomain.RecordKey) error {
	if !key.IsWrapped {
		return fieldsDomain.ErrRecordKeyNotWrapped
	}

	querier := database.GetTx(ctx, m.db)
	key.UpdatedAt = time.Now().UTC()

	query := `UPDATE record_keys
			  SET entity_type = ?,
				  entity_identity = ?,
				  wrapped_key_material = ?,
				  updated_at = ?
			  WHERE id = ?`

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
func (m *MySQLRecordKeyRepository) GetByIdentity(
	ctx context.Context,
	recordType string,
	identity int64,
) (*fieldsDomain.RecordKey, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + recordKeyColumns + ` FROM record_keys WHERE entity_type = ? AND entity_identity = ?`

	key, err := scanRecordKey(querier.QueryRowContext(ctx, query, recordType, identity))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fieldsDomain.ErrRecordKeyNotFound
		}
		return nil, apperrors.Wrap(err, "failed to get record key")
	}
	return key, nil
}

// List returns every record key ordered by id, optionally locking the rows.
func (m *MySQLRecordKeyRepository) List(ctx context.Context, forUpdate bool) ([]*fieldsDomain.RecordKey, error) {
	querier := database.GetTx(ctx, m.db)

	query := `SELECT ` + recordKeyColumns + ` FROM record_keys ORDER BY id ASC`
	if forUpdate {
		query += ` FOR UPDATE`
	}

	return listRecordKeys(ctx, querier, query)
}

// NewMySQLRecordKeyRepository creates a new MySQL record key repository instance.
func NewMySQLRecordKeyRepository(db *sql.DB) *MySQLRecordKeyRepository {
	return &MySQLRecordKeyRepository{db: db}
}
