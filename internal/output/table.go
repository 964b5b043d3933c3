// Package output writes query results to the terminal in a chosen style.
package output

import (
	"errors"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/negz/prettysql/internal/table"
)

// A Style is a way of drawing a table.
type Style string

// Supported styles.
const (
	// StylePretty draws a plain ASCII table with + corners.
	StylePretty Style = "pretty"
	// StyleBox draws a table using tablewriter's default renderer.
	StyleBox Style = "box"
)

// ErrUnknownStyle indicates a style that isn't supported.
var ErrUnknownStyle = errors.New("unknown style")

// Styles returns every supported style.
func Styles() []Style {
	return []Style{StylePretty, StyleBox}
}

// Write reads the whole source and writes it to w in the given style. Nothing
// is written if reading the source fails.
func Write(w io.Writer, s Style, src table.Source) error {
	switch s {
	case StylePretty, StyleBox:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownStyle, s)
	}

	t, err := table.Collect(src)
	if err != nil {
		return err
	}

	if s == StyleBox {
		return Table(w, t.Headers, t.Rows)
	}
	return table.Print(w, t.Headers, t.Rows)
}

// Table renders a bordered table to the given writer using tablewriter.
func Table(w io.Writer, headers []string, rows [][]string) error {
	if len(headers) == 0 {
		return fmt.Errorf("%w: no columns", table.ErrInvalidInput)
	}
	t := tablewriter.NewWriter(w)
	t.Header(toAny(headers)...)
	if err := t.Bulk(rows); err != nil {
		return err
	}
	return t.Render()
}

// toAny converts a string slice to an any slice for tablewriter.Header.
func toAny(s []string) []any {
	result := make([]any, len(s))
	for i, v := range s {
		result[i] = v
	}
	return result
}
