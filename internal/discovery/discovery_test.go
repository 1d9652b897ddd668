package discovery

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/icelens/icelens/internal/logger"
)

func TestLister_Schemas(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	lister := NewLister(db, logger.NewDefault())

	mock.ExpectQuery(`SELECT DISTINCT table_schema FROM information_schema.tables`).
		WillReturnRows(sqlmock.NewRows([]string{"table_schema"}).
			AddRow("analytics").
			AddRow("sales"))

	schemas, err := lister.Schemas(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"analytics", "sales"}, schemas)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLister_Schemas_Empty(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	lister := NewLister(db, nil)

	mock.ExpectQuery(`SELECT DISTINCT table_schema`).
		WillReturnRows(sqlmock.NewRows([]string{"table_schema"}))

	schemas, err := lister.Schemas(context.Background())

	require.NoError(t, err)
	assert.Empty(t, schemas)
}

func TestLister_Schemas_QueryError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	lister := NewLister(db, logger.NewDefault())

	mock.ExpectQuery(`SELECT DISTINCT table_schema`).WillReturnError(assert.AnError)

	_, err := lister.Schemas(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list schemas")
}

func TestLister_Tables_BindsSchemaParameter(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	lister := NewLister(db, logger.NewDefault())

	mock.ExpectQuery(`SELECT DISTINCT table_name FROM information_schema.tables`).
		WithArgs("sales").
		WillReturnRows(sqlmock.NewRows([]string{"table_name"}).
			AddRow("orders").
			AddRow("returns"))

	tables, err := lister.Tables(context.Background(), "sales")

	require.NoError(t, err)
	assert.Equal(t, []string{"orders", "returns"}, tables)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLister_Tables_QueryError(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer func() { _ = db.Close() }()

	lister := NewLister(db, logger.NewDefault())

	mock.ExpectQuery(`SELECT DISTINCT table_name`).
		WithArgs("sales").
		WillReturnError(assert.AnError)

	_, err := lister.Tables(context.Background(), "sales")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list tables in sales")
}
