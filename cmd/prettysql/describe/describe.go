// Package describe implements the describe command.
package describe

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/negz/prettysql/internal/cache"
	"github.com/negz/prettysql/internal/output"
)

// Command prints the columns of a table or view.
type Command struct {
	Style output.Style `default:"pretty" enum:"pretty,box" help:"Table style (${enum})."`

	Table string `arg:"" help:"Table or view to describe."`
}

// Run executes the describe command.
func (c *Command) Run(d *cache.DB, log *slog.Logger) error {
	ctx := context.Background()
	store, err := d.Store(ctx)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	log.Debug("Describing table", "table", c.Table)

	rows, err := store.Describe(ctx, c.Table)
	if err != nil {
		return fmt.Errorf("describe %s: %w", c.Table, err)
	}
	defer rows.Close() //nolint:errcheck // Read-only query.

	return output.Write(os.Stdout, c.Style, rows)
}
