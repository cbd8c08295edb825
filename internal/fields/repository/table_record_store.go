package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/allisson/encrypted-fields/internal/database"
	apperrors "github.com/allisson/encrypted-fields/internal/errors"
	fieldsDomain "github.com/allisson/encrypted-fields/internal/fields/domain"
)

// Dialect selects placeholder and quoting style.
type Dialect int

const (
	// DialectPostgreSQL uses $n placeholders and double-quoted identifiers.
	DialectPostgreSQL Dialect = iota
	// DialectMySQL uses ? placeholders and backquoted identifiers.
	DialectMySQL
)

func (d Dialect) placeholder(n int) string {
	if d == DialectMySQL {
		return "?"
	}
	return fmt.Sprintf("$%d", n)
}

// Identifiers are validated against a strict pattern when the descriptor is loaded;
// quoting only guards reserved words.
func (d Dialect) quote(ident string) string {
	if d == DialectMySQL {
		return "`" + ident + "`"
	}
	return `"` + ident + `"`
}

// TableRecordStore loads and saves table-backed records as domain.Row values.
//
// Columns are read and written as text. JSON columns hold an object of strings and are
// exposed as map[string]string so element-level encryption applies to them.
type TableRecordStore struct {
	db      *sql.DB
	dialect Dialect
	tables  map[string]fieldsDomain.TableDescriptor
}

// NewTableRecordStore creates a store for the given table descriptors.
func NewTableRecordStore(
	db *sql.DB,
	dialect Dialect,
	tables []fieldsDomain.TableDescriptor,
) *TableRecordStore {
	byType := make(map[string]fieldsDomain.TableDescriptor, len(tables))
	for _, t := range tables {
		byType[t.RecordType] = t
	}
	return &TableRecordStore{db: db, dialect: dialect, tables: byType}
}

// Find loads the record of recordType with the given identity, or ErrRecordNotFound.
func (s *TableRecordStore) Find(
	ctx context.Context,
	recordType string,
	identity int64,
) (fieldsDomain.Record, error) {
	table, err := s.table(recordType)
	if err != nil {
		return nil, err
	}

	querier := database.GetTx(ctx, s.db)

	columns := table.ColumnNames()
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = s.dialect.quote(c)
	}

	query := fmt.Sprintf(
		"SELECT %s FROM %s WHERE %s = %s",
		strings.Join(quoted, ", "),
		s.dialect.quote(table.Table),
		s.dialect.quote(table.IDColumn),
		s.dialect.placeholder(1),
	)

	raw := make([]sql.NullString, len(columns))
	dest := make([]any, len(columns))
	for i := range raw {
		dest[i] = &raw[i]
	}

	if err := querier.QueryRowContext(ctx, query, identity).Scan(dest...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s %d", fieldsDomain.ErrRecordNotFound, recordType, identity)
		}
		return nil, apperrors.Wrap(err, "failed to load record")
	}

	values := make(map[string]any, len(columns))
	for i, column := range table.Columns {
		if !raw[i].Valid {
			values[column.Name] = nil
			continue
		}
		if column.JSON {
			var m map[string]string
			if err := json.Unmarshal([]byte(raw[i].String), &m); err != nil {
				return nil, apperrors.Wrap(err, fmt.Sprintf("failed to decode json column %s", column.Name))
			}
			values[column.Name] = m
			continue
		}
		values[column.Name] = raw[i].String
	}

	return fieldsDomain.NewRow(recordType, identity, values), nil
}

// Save updates the record, or inserts it when it has no identity yet. Inserted rows get
// their identity attached when the record supports SetIdentity.
func (s *TableRecordStore) Save(ctx context.Context, rec fieldsDomain.Record) error {
	table, err := s.table(rec.RecordType())
	if err != nil {
		return err
	}

	// Rows are written from their raw values so empty strings stay empty.
	get := rec.FieldAccessor().GetField
	if row, ok := rec.(*fieldsDomain.Row); ok {
		get = func(name string) (any, error) { return row.Values()[name], nil }
	}

	columns := table.ColumnNames()
	args := make([]any, 0, len(columns)+1)
	for _, column := range table.Columns {
		value, err := get(column.Name)
		if err != nil {
			return err
		}
		arg, err := columnValue(column, value)
		if err != nil {
			return err
		}
		args = append(args, arg)
	}

	querier := database.GetTx(ctx, s.db)

	if identity, ok := rec.RecordIdentity(); ok {
		sets := make([]string, len(columns))
		for i, c := range columns {
			sets[i] = fmt.Sprintf("%s = %s", s.dialect.quote(c), s.dialect.placeholder(i+1))
		}
		query := fmt.Sprintf(
			"UPDATE %s SET %s WHERE %s = %s",
			s.dialect.quote(table.Table),
			strings.Join(sets, ", "),
			s.dialect.quote(table.IDColumn),
			s.dialect.placeholder(len(columns)+1),
		)
		args = append(args, identity)

		result, err := querier.ExecContext(ctx, query, args...)
		if err != nil {
			return apperrors.Wrap(err, "failed to update record")
		}
		return checkAffected(result, "failed to update record")
	}

	quoted := make([]string, len(columns))
	placeholders := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = s.dialect.quote(c)
		placeholders[i] = s.dialect.placeholder(i + 1)
	}
	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		s.dialect.quote(table.Table),
		strings.Join(quoted, ", "),
		strings.Join(placeholders, ", "),
	)

	var identity int64
	if s.dialect == DialectMySQL {
		result, err := querier.ExecContext(ctx, query, args...)
		if err != nil {
			return apperrors.Wrap(err, "failed to insert record")
		}
		if identity, err = result.LastInsertId(); err != nil {
			return apperrors.Wrap(err, "failed to get record id")
		}
	} else {
		query += " RETURNING " + s.dialect.quote(table.IDColumn)
		if err := querier.QueryRowContext(ctx, query, args...).Scan(&identity); err != nil {
			return apperrors.Wrap(err, "failed to insert record")
		}
	}

	if setter, ok := rec.(interface{ SetIdentity(int64) }); ok {
		setter.SetIdentity(identity)
	}
	return nil
}

// RecordTypes lists the record types this store can load.
func (s *TableRecordStore) RecordTypes() []string {
	types := make([]string, 0, len(s.tables))
	for t := range s.tables {
		types = append(types, t)
	}
	return types
}

func (s *TableRecordStore) table(recordType string) (fieldsDomain.TableDescriptor, error) {
	table, ok := s.tables[recordType]
	if !ok {
		return fieldsDomain.TableDescriptor{}, fmt.Errorf("%w: %s", fieldsDomain.ErrUnknownRecordType, recordType)
	}
	return table, nil
}

func columnValue(column fieldsDomain.Column, value any) (any, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case map[string]string:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, apperrors.Wrap(err, fmt.Sprintf("failed to encode json column %s", column.Name))
		}
		return string(data), nil
	case map[string]any:
		m, err := fieldsDomain.StringMap(v)
		if err != nil {
			return nil, err
		}
		return columnValue(column, m)
	default:
		return nil, fmt.Errorf("%w: column %s holds %T", fieldsDomain.ErrUnsupportedFieldValue, column.Name, value)
	}
}
