package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fieldsDomain "github.com/allisson/encrypted-fields/internal/fields/domain"
)

var customersTable = fieldsDomain.TableDescriptor{
	RecordType: "customers",
	Table:      "customers",
	IDColumn:   "id",
	Columns: []fieldsDomain.Column{
		{Name: "email"},
		{Name: "profile", JSON: true},
		{Name: "name"},
	},
}

func TestTableRecordStore_Find(t *testing.T) {
	ctx := context.Background()

	t.Run("postgresql", func(t *testing.T) {
		db, mock := newMockDB(t)
		store := NewTableRecordStore(db, DialectPostgreSQL, []fieldsDomain.TableDescriptor{customersTable})

		mock.ExpectQuery(`SELECT "email", "profile", "name" FROM "customers" WHERE "id" = \$1`).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"email", "profile", "name"}).
				AddRow("ZW52ZWxvcGU=", `{"phone":"cGhvbmU=","city":"Lisbon"}`, nil))

		rec, err := store.Find(ctx, "customers", 5)
		require.NoError(t, err)

		id, ok := rec.RecordIdentity()
		assert.True(t, ok)
		assert.Equal(t, int64(5), id)

		row := rec.(*fieldsDomain.Row)
		assert.Equal(t, "ZW52ZWxvcGU=", row.Values()["email"])
		assert.Equal(t, map[string]string{"phone": "cGhvbmU=", "city": "Lisbon"}, row.Values()["profile"])
		assert.Nil(t, row.Values()["name"])
	})

	t.Run("mysql quoting", func(t *testing.T) {
		db, mock := newMockDB(t)
		store := NewTableRecordStore(db, DialectMySQL, []fieldsDomain.TableDescriptor{customersTable})

		mock.ExpectQuery("SELECT `email`, `profile`, `name` FROM `customers` WHERE `id` = \\?").
			WillReturnError(sql.ErrNoRows)

		_, err := store.Find(ctx, "customers", 5)
		assert.ErrorIs(t, err, fieldsDomain.ErrRecordNotFound)
	})

	t.Run("unknown record type", func(t *testing.T) {
		db, _ := newMockDB(t)
		store := NewTableRecordStore(db, DialectPostgreSQL, nil)

		_, err := store.Find(ctx, "orders", 1)
		assert.ErrorIs(t, err, fieldsDomain.ErrUnknownRecordType)
	})

	t.Run("invalid json column", func(t *testing.T) {
		db, mock := newMockDB(t)
		store := NewTableRecordStore(db, DialectPostgreSQL, []fieldsDomain.TableDescriptor{customersTable})

		mock.ExpectQuery(`SELECT`).
			WillReturnRows(sqlmock.NewRows([]string{"email", "profile", "name"}).AddRow("x", "{not json", "n"))

		_, err := store.Find(ctx, "customers", 5)
		assert.ErrorContains(t, err, "failed to decode json column profile")
	})
}

func TestTableRecordStore_Save(t *testing.T) {
	ctx := context.Background()

	t.Run("update keeps empty strings", func(t *testing.T) {
		db, mock := newMockDB(t)
		store := NewTableRecordStore(db, DialectPostgreSQL, []fieldsDomain.TableDescriptor{customersTable})

		row := fieldsDomain.NewRow("customers", 5, map[string]any{
			"email":   "ZW52ZWxvcGU=",
			"profile": map[string]string{"phone": "cGhvbmU="},
			"name":    "",
		})

		mock.ExpectExec(`UPDATE "customers" SET "email" = \$1, "profile" = \$2, "name" = \$3 WHERE "id" = \$4`).
			WithArgs("ZW52ZWxvcGU=", `{"phone":"cGhvbmU="}`, "", int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, store.Save(ctx, row))
	})

	t.Run("postgresql insert attaches identity", func(t *testing.T) {
		db, mock := newMockDB(t)
		store := NewTableRecordStore(db, DialectPostgreSQL, []fieldsDomain.TableDescriptor{customersTable})

		row := fieldsDomain.NewRow("customers", 0, map[string]any{"email": "x"})

		mock.ExpectQuery(`INSERT INTO "customers" \("email", "profile", "name"\) VALUES \(\$1, \$2, \$3\) RETURNING "id"`).
			WithArgs("x", nil, nil).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))

		require.NoError(t, store.Save(ctx, row))
		id, ok := row.RecordIdentity()
		assert.True(t, ok)
		assert.Equal(t, int64(9), id)
	})

	t.Run("mysql insert attaches identity", func(t *testing.T) {
		db, mock := newMockDB(t)
		store := NewTableRecordStore(db, DialectMySQL, []fieldsDomain.TableDescriptor{customersTable})

		row := fieldsDomain.NewRow("customers", 0, map[string]any{"email": "x"})

		mock.ExpectExec("INSERT INTO `customers`").WillReturnResult(sqlmock.NewResult(12, 1))

		require.NoError(t, store.Save(ctx, row))
		id, _ := row.RecordIdentity()
		assert.Equal(t, int64(12), id)
	})

	t.Run("unsupported value", func(t *testing.T) {
		db, _ := newMockDB(t)
		store := NewTableRecordStore(db, DialectPostgreSQL, []fieldsDomain.TableDescriptor{customersTable})

		row := fieldsDomain.NewRow("customers", 5, map[string]any{"email": 3.14})
		assert.ErrorIs(t, store.Save(ctx, row), fieldsDomain.ErrUnsupportedFieldValue)
	})

	t.Run("missing row", func(t *testing.T) {
		db, mock := newMockDB(t)
		store := NewTableRecordStore(db, DialectMySQL, []fieldsDomain.TableDescriptor{customersTable})

		mock.ExpectExec("UPDATE `customers`").WillReturnResult(sqlmock.NewResult(0, 0))

		err := store.Save(ctx, fieldsDomain.NewRow("customers", 5, nil))
		assert.Error(t, err)
	})
}
