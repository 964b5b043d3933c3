// Package db reads query results from a SQLite database.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite" // SQL driver registration.
)

// ErrNoSuchTable indicates a table that doesn't exist in the database.
var ErrNoSuchTable = errors.New("no such table")

// SQLiteStore is a SQLite database that can be queried for tabular results.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON;"); err != nil {
		db.Close() //nolint:errcheck // Already returning an error.
		return nil, fmt.Errorf("set pragmas: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// DB returns the underlying database connection for direct queries.
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}

// Query runs the supplied SQL and returns its results. The caller must close
// the returned Rows.
func (s *SQLiteStore) Query(ctx context.Context, query string, opts ...RowsOption) (*Rows, error) {
	return s.query(ctx, query, nil, opts...)
}

// Tables returns the names of the tables and views in the database.
func (s *SQLiteStore) Tables(ctx context.Context, opts ...RowsOption) (*Rows, error) {
	return s.query(ctx, `
		SELECT name, type
		FROM sqlite_schema
		WHERE type IN ('table', 'view') AND name NOT LIKE 'sqlite_%'
		ORDER BY name
	`, nil, opts...)
}

// Describe returns the columns of the named table or view.
func (s *SQLiteStore) Describe(ctx context.Context, table string, opts ...RowsOption) (*Rows, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM sqlite_schema
		WHERE type IN ('table', 'view') AND name = ?
	`, table).Scan(&n)
	if err != nil {
		return nil, fmt.Errorf("look up table %s: %w", table, err)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchTable, table)
	}

	return s.query(ctx, `
		SELECT cid, name, type, "notnull", dflt_value AS "default", pk
		FROM pragma_table_info(?)
		ORDER BY cid
	`, []any{table}, opts...)
}

func (s *SQLiteStore) query(ctx context.Context, query string, args []any, opts ...RowsOption) (*Rows, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	return NewRows(rows, opts...), nil
}
