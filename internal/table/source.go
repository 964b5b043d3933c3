package table

import (
	"errors"
	"fmt"
	"io"
)

// A Source produces a table one row at a time. Next advances to the next row
// and returns false when there are no more rows or an error occurred, after
// which Err reports the error, if any.
type Source interface {
	Columns() ([]string, error)
	Next() bool
	Row() ([]string, error)
	Err() error
}

// A DataSourceError is a fault encountered while reading a Source.
type DataSourceError struct {
	// Op is the read that failed, e.g. "read columns".
	Op  string
	Err error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("data source: %s: %v", e.Op, e.Err)
}

func (e *DataSourceError) Unwrap() error {
	return e.Err
}

// Collect reads every row from the source into memory. Column widths depend on
// every row, so nothing can be rendered until the source is exhausted.
func Collect(src Source) (*Table, error) {
	cols, err := src.Columns()
	if err != nil {
		return nil, &DataSourceError{Op: "read columns", Err: err}
	}

	t := &Table{Headers: cols}
	for src.Next() {
		row, err := src.Row()
		if err != nil {
			return nil, &DataSourceError{Op: fmt.Sprintf("read row %d", len(t.Rows)+1), Err: err}
		}
		t.Rows = append(t.Rows, row)
	}
	if err := src.Err(); err != nil {
		return nil, &DataSourceError{Op: "iterate rows", Err: err}
	}

	return t, nil
}

// PrintSource reads the whole source then writes it to w as a table. Nothing
// is written if reading the source fails.
func PrintSource(w io.Writer, src Source) error {
	t, err := Collect(src)
	if err != nil {
		return err
	}
	return Print(w, t.Headers, t.Rows)
}

// A SliceSource is a Source over rows that are already in memory.
type SliceSource struct {
	headers []string
	rows    [][]string
	next    int
}

// NewSliceSource returns a Source that produces the supplied rows.
func NewSliceSource(headers []string, rows [][]string) *SliceSource {
	return &SliceSource{headers: headers, rows: rows}
}

// Columns returns the source's headers.
func (s *SliceSource) Columns() ([]string, error) {
	return s.headers, nil
}

// Next advances to the next row.
func (s *SliceSource) Next() bool {
	if s.next >= len(s.rows) {
		return false
	}
	s.next++
	return true
}

// Row returns the current row.
func (s *SliceSource) Row() ([]string, error) {
	if s.next == 0 {
		return nil, errors.New("no current row")
	}
	return s.rows[s.next-1], nil
}

// Err always returns nil.
func (s *SliceSource) Err() error {
	return nil
}
