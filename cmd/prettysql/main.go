// Package main implements the prettysql CLI for printing SQLite query results
// as tables.
package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/negz/prettysql/cmd/prettysql/describe"
	"github.com/negz/prettysql/cmd/prettysql/query"
	"github.com/negz/prettysql/cmd/prettysql/tables"
	"github.com/negz/prettysql/internal/cache"
	"github.com/negz/prettysql/internal/version"
)

type cli struct {
	cache.DB `embed:""`

	Debug   bool             `help:"Log debug output to stderr."`
	Version kong.VersionFlag `help:"Print the version and exit."`

	Query    query.Command    `cmd:"" help:"Run a SQL query and print the results as a table."`
	Tables   tables.Command   `cmd:"" help:"List the tables and views in the database."`
	Describe describe.Command `cmd:"" help:"List the columns of a table or view."`
}

func options() []kong.Option {
	return []kong.Option{
		kong.Name("prettysql"),
		kong.Description("Print SQLite query results as aligned tables."),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version},
	}
}

func main() {
	c := &cli{}
	parser := kong.Must(c, options()...)
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	level := slog.LevelInfo
	if c.Debug {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ctx.Bind(&c.DB, log)
	err = ctx.Run()
	c.Close() //nolint:errcheck // Nothing to do with error on program exit.
	ctx.FatalIfErrorf(err)
}
