// Package discovery lists the schemas and Iceberg base tables visible to the
// session, for table selection.
package discovery

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/icelens/icelens/internal/logger"
)

// Lister enumerates schemas and tables from the catalog's information_schema.
type Lister struct {
	db     *sql.DB
	logger *logger.Logger
}

// NewLister creates a Lister over an established session.
func NewLister(db *sql.DB, log *logger.Logger) *Lister {
	if log == nil {
		log = logger.NewDefault()
	}
	return &Lister{db: db, logger: log}
}

// Schemas returns the schemas that contain base tables, excluding the
// engine's own information_schema and system schemas.
func (l *Lister) Schemas(ctx context.Context) ([]string, error) {
	query := `SELECT DISTINCT table_schema FROM information_schema.tables
		WHERE table_type = 'BASE TABLE'
		AND table_schema NOT IN ('information_schema', 'system')
		ORDER BY table_schema`

	rows, err := l.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list schemas: %w", err)
	}
	defer rows.Close()

	var schemas []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan schema name: %w", err)
		}
		schemas = append(schemas, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list schemas: %w", err)
	}

	return schemas, nil
}

// Tables returns the base tables in one schema. The schema name travels as a
// bound parameter, never as interpolated query text.
func (l *Lister) Tables(ctx context.Context, schema string) ([]string, error) {
	query := `SELECT DISTINCT table_name FROM information_schema.tables
		WHERE table_type = 'BASE TABLE'
		AND table_schema NOT IN ('information_schema', 'system')
		AND lower(table_schema) = lower(?)
		ORDER BY table_name`

	rows, err := l.db.QueryContext(ctx, query, schema)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables in %s: %w", schema, err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list tables in %s: %w", schema, err)
	}

	return tables, nil
}
