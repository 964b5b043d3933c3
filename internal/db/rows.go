package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrNoResultSet indicates a statement, e.g. CREATE TABLE, that ran but
// returned no columns to print.
var ErrNoResultSet = errors.New("statement returned no result set")

// DefaultNull is how a NULL value is shown unless overridden by WithNull.
const DefaultNull = "NULL"

// RowsOption configures Rows.
type RowsOption func(*Rows)

// WithNull sets the text used for NULL values.
func WithNull(s string) RowsOption {
	return func(r *Rows) {
		r.null = s
	}
}

// Rows adapts SQL query results into rows of text. Every value is converted
// to a string as it's read, so the table printer never sees typed values.
type Rows struct {
	rows *sql.Rows
	null string

	// Declared type of each column, e.g. DATE. Read on the first call to Row.
	types []string
}

// NewRows returns Rows that read from the supplied SQL results.
func NewRows(rows *sql.Rows, opts ...RowsOption) *Rows {
	r := &Rows{rows: rows, null: DefaultNull}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Columns returns the names of the result columns. It returns ErrNoResultSet
// if the statement didn't produce any.
func (r *Rows) Columns() ([]string, error) {
	cols, err := r.rows.Columns()
	if err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return nil, ErrNoResultSet
	}
	return cols, nil
}

// Next advances to the next row.
func (r *Rows) Next() bool {
	return r.rows.Next()
}

// Row returns the current row as text.
func (r *Rows) Row() ([]string, error) {
	if r.types == nil {
		cts, err := r.rows.ColumnTypes()
		if err != nil {
			return nil, fmt.Errorf("get column types: %w", err)
		}
		r.types = make([]string, len(cts))
		for i, ct := range cts {
			r.types[i] = ct.DatabaseTypeName()
		}
	}

	values := make([]any, len(r.types))
	ptrs := make([]any, len(r.types))
	for i := range values {
		ptrs[i] = &values[i]
	}

	if err := r.rows.Scan(ptrs...); err != nil {
		return nil, fmt.Errorf("scan row: %w", err)
	}

	out := make([]string, len(values))
	for i, v := range values {
		if v == nil {
			out[i] = r.null
			continue
		}
		out[i] = FormatAs(v, r.types[i])
	}
	return out, nil
}

// Err returns any error encountered while iterating.
func (r *Rows) Err() error {
	return r.rows.Err()
}

// Close closes the underlying SQL results.
func (r *Rows) Close() error {
	return r.rows.Close()
}

// FormatAs converts a value read from a column of the supplied declared type to
// text. Times in DATE columns are shown as year-first dates, and times in
// DATETIME or TIMESTAMP columns always keep their time of day. Times in other
// columns, and all other values, are formatted by Format.
func FormatAs(v any, dbType string) string {
	t, ok := v.(time.Time)
	if !ok {
		return Format(v)
	}
	switch strings.ToUpper(dbType) {
	case "DATE":
		return t.Format(time.DateOnly)
	case "DATETIME", "TIMESTAMP":
		return t.Format(time.RFC3339)
	default:
		return Format(v)
	}
}

// Format converts a value read from the database to text. Times without a
// time of day are shown as year-first dates (e.g. 1992-03-01).
func Format(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		if v.Equal(v.Truncate(24*time.Hour)) && v.Location() == time.UTC {
			return v.Format(time.DateOnly)
		}
		return v.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", v)
	}
}
