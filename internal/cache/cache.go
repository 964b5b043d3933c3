// Package cache locates and lazily opens the local prettysql database.
package cache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/negz/prettysql/internal/db"
)

// Dir returns the prettysql cache directory.
//
// It uses os.UserCacheDir, which respects XDG_CACHE_HOME on Linux, uses
// ~/Library/Caches on macOS, and %LocalAppData% on Windows. If the user cache
// directory can't be determined it falls back to the system temp directory.
func Dir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "prettysql")
	}
	return filepath.Join(base, "prettysql")
}

// DefaultPath returns the path of the default database.
func DefaultPath() string {
	return filepath.Join(Dir(), "prettysql.db")
}

// DB provides access to a SQLite database.
// It lazily opens the database on first use.
type DB struct {
	Path string `help:"Path to the SQLite database. Defaults to a database in the user cache directory." name:"db" type:"path"`

	store *db.SQLiteStore
}

// Store returns the database store, opening it if needed.
func (d *DB) Store(ctx context.Context) (*db.SQLiteStore, error) {
	if d.store != nil {
		return d.store, nil
	}

	path := d.Path
	if path == "" {
		path = DefaultPath()
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	store, err := db.Open(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	d.store = store
	return d.store, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	if d.store == nil {
		return nil
	}
	return d.store.Close()
}
