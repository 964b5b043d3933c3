// Package query implements the query command.
package query

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/negz/prettysql/internal/cache"
	"github.com/negz/prettysql/internal/db"
	"github.com/negz/prettysql/internal/output"
)

// Command runs SQL queries against the database.
type Command struct {
	Style output.Style `default:"pretty" enum:"pretty,box" help:"Table style (${enum})."`
	Null  string       `default:"NULL"   help:"Text to print for NULL values."`

	SQL string `arg:"" help:"SQL query to execute."`
}

// Run executes the query command.
func (c *Command) Run(d *cache.DB, log *slog.Logger) error {
	ctx := context.Background()
	store, err := d.Store(ctx)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	log.Debug("Running query", "sql", c.SQL, "style", c.Style)

	rows, err := store.Query(ctx, c.SQL, db.WithNull(c.Null))
	if err != nil {
		return err
	}
	defer rows.Close() //nolint:errcheck // Nothing to do with error on program exit.

	if err := output.Write(os.Stdout, c.Style, rows); err != nil {
		return fmt.Errorf("print results: %w", err)
	}
	return nil
}
