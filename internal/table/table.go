// Package table renders query results as aligned, bordered ASCII tables.
package table

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Elements that make up a rendered table.
const (
	Intersection = "+"
	Horizontal   = "-"
	Vertical     = "|"

	// Padding is added to the widest value in each column. One slot holds the
	// space after the vertical border, the rest keeps text off the next one.
	Padding = 3
)

// ErrInvalidInput indicates a table that can't be rendered, i.e. one with no
// columns or with a row that doesn't have one cell per column.
var ErrInvalidInput = errors.New("invalid table")

// A Table is a header row plus data rows, all already formatted as strings.
type Table struct {
	Headers []string
	Rows    [][]string
}

// ColumnWidths returns the width of each column: the length in characters of
// its widest value, header included, plus Padding. Each character is assumed
// to occupy one display column.
func ColumnWidths(headers []string, rows [][]string) ([]int, error) {
	if err := validate(headers, rows); err != nil {
		return nil, err
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], utf8.RuneCountInString(cell))
		}
	}
	for i := range widths {
		widths[i] += Padding
	}
	return widths, nil
}

// Border returns a horizontal border for columns of the supplied widths.
func Border(widths []int) string {
	b := &strings.Builder{}
	for _, w := range widths {
		b.WriteString(Intersection)
		b.WriteString(strings.Repeat(Horizontal, max(0, w)))
	}
	b.WriteString(Intersection)
	return b.String()
}

// Render returns the table as text. The output starts with a blank line,
// followed by a border, the header row, another border, one line per data
// row, and a closing border. Every line ends with a newline.
func Render(headers []string, rows [][]string) (string, error) {
	widths, err := ColumnWidths(headers, rows)
	if err != nil {
		return "", err
	}

	border := Border(widths)

	b := &strings.Builder{}
	b.WriteString("\n")
	b.WriteString(border)
	b.WriteString("\n")
	writeRow(b, widths, headers)
	b.WriteString(border)
	b.WriteString("\n")
	for _, row := range rows {
		writeRow(b, widths, row)
	}
	b.WriteString(border)
	b.WriteString("\n")

	return b.String(), nil
}

// Print renders the table and writes it to w.
func Print(w io.Writer, headers []string, rows [][]string) error {
	out, err := Render(headers, rows)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// Render returns the table as text. See the package level Render.
func (t *Table) Render() (string, error) {
	return Render(t.Headers, t.Rows)
}

// writeRow writes each cell as a vertical border, a space, and the cell's
// content left-justified in the rest of the column. fmt pads by characters,
// matching ColumnWidths.
func writeRow(b *strings.Builder, widths []int, cells []string) {
	for i, cell := range cells {
		b.WriteString(Vertical)
		fmt.Fprintf(b, " %-*s", widths[i]-1, cell)
	}
	b.WriteString(Vertical)
	b.WriteString("\n")
}

func validate(headers []string, rows [][]string) error {
	if len(headers) == 0 {
		return fmt.Errorf("%w: no columns", ErrInvalidInput)
	}
	for i, row := range rows {
		if len(row) != len(headers) {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidInput, i, len(row), len(headers))
		}
	}
	return nil
}
