// Package tables implements the tables command.
package tables

import (
	"context"
	"fmt"
	"os"

	"github.com/negz/prettysql/internal/cache"
	"github.com/negz/prettysql/internal/output"
)

// Command lists the tables and views in the database.
type Command struct {
	Style output.Style `default:"pretty" enum:"pretty,box" help:"Table style (${enum})."`
}

// Run executes the tables command.
func (c *Command) Run(d *cache.DB) error {
	ctx := context.Background()
	store, err := d.Store(ctx)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	rows, err := store.Tables(ctx)
	if err != nil {
		return fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close() //nolint:errcheck // Read-only query.

	return output.Write(os.Stdout, c.Style, rows)
}
