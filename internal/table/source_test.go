package table

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var errBoom = errors.New("boom")

// A MockSource is a Source whose reads can be made to fail.
type MockSource struct {
	MockColumns func() ([]string, error)
	MockRows    [][]string
	MockRowErr  error // Returned by Row after the last of MockRows.
	MockErr     error

	next int
}

func (s *MockSource) Columns() ([]string, error) { return s.MockColumns() }

func (s *MockSource) Next() bool {
	limit := len(s.MockRows)
	if s.MockRowErr != nil {
		limit++
	}
	if s.next >= limit {
		return false
	}
	s.next++
	return true
}

func (s *MockSource) Row() ([]string, error) {
	if s.next > len(s.MockRows) {
		return nil, s.MockRowErr
	}
	return s.MockRows[s.next-1], nil
}

func (s *MockSource) Err() error { return s.MockErr }

func columns(c ...string) func() ([]string, error) {
	return func() ([]string, error) { return c, nil }
}

func TestCollect(t *testing.T) {
	type args struct {
		src Source
	}
	type want struct {
		t   *Table
		op  string
		err error
	}
	cases := map[string]struct {
		reason string
		args   args
		want   want
	}{
		"AllRows": {
			reason: "Every row should be buffered in order.",
			args: args{src: &MockSource{
				MockColumns: columns("id", "name"),
				MockRows:    [][]string{{"1", "Alice"}, {"22", "Bob"}},
			}},
			want: want{t: &Table{
				Headers: []string{"id", "name"},
				Rows:    [][]string{{"1", "Alice"}, {"22", "Bob"}},
			}},
		},
		"NoRows": {
			reason: "A source with no rows should produce a table with only headers.",
			args: args{src: &MockSource{
				MockColumns: columns("id"),
			}},
			want: want{t: &Table{Headers: []string{"id"}}},
		},
		"ColumnsError": {
			reason: "Failing to read columns should be a data source error.",
			args: args{src: &MockSource{
				MockColumns: func() ([]string, error) { return nil, errBoom },
			}},
			want: want{op: "read columns", err: errBoom},
		},
		"RowError": {
			reason: "Failing to read a row should be a data source error naming the row.",
			args: args{src: &MockSource{
				MockColumns: columns("id"),
				MockRows:    [][]string{{"1"}},
				MockRowErr:  errBoom,
			}},
			want: want{op: "read row 2", err: errBoom},
		},
		"IterationError": {
			reason: "A fault reported once iteration stops should be a data source error.",
			args: args{src: &MockSource{
				MockColumns: columns("id"),
				MockRows:    [][]string{{"1"}},
				MockErr:     errBoom,
			}},
			want: want{op: "iterate rows", err: errBoom},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := Collect(tc.args.src)
			if diff := cmp.Diff(tc.want.err, err, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("\n%s\nCollect(...): -want error, +got error:\n%s", tc.reason, diff)
			}
			if tc.want.op != "" {
				dse := &DataSourceError{}
				if !errors.As(err, &dse) {
					t.Fatalf("\n%s\nCollect(...): want *DataSourceError, got %T", tc.reason, err)
				}
				if diff := cmp.Diff(tc.want.op, dse.Op); diff != "" {
					t.Errorf("\n%s\nCollect(...): -want op, +got op:\n%s", tc.reason, diff)
				}
			}
			if diff := cmp.Diff(tc.want.t, got); diff != "" {
				t.Errorf("\n%s\nCollect(...): -want, +got:\n%s", tc.reason, diff)
			}
		})
	}
}

func TestDataSourceErrorUnwrap(t *testing.T) {
	var err error = &DataSourceError{Op: "iterate rows", Err: errBoom}

	if !errors.Is(err, errBoom) {
		t.Errorf("errors.Is(%v, errBoom): want true, got false", err)
	}

	want := "data source: iterate rows: boom"
	if diff := cmp.Diff(want, err.Error()); diff != "" {
		t.Errorf("Error(): -want, +got:\n%s", diff)
	}
}

func TestPrintSource(t *testing.T) {
	type args struct {
		src Source
	}
	type want struct {
		out string
		err error
	}
	cases := map[string]struct {
		reason string
		args   args
		want   want
	}{
		"Success": {
			reason: "A readable source should be printed as a table.",
			args: args{src: NewSliceSource(
				[]string{"id", "name"},
				[][]string{{"1", "Alice"}, {"22", "Bob"}},
			)},
			want: want{out: lines(
				"",
				"+-----+--------+",
				"| id  | name   |",
				"+-----+--------+",
				"| 1   | Alice  |",
				"| 22  | Bob    |",
				"+-----+--------+",
			)},
		},
		"FaultMidStream": {
			reason: "Nothing should be printed when the source fails part way through.",
			args: args{src: &MockSource{
				MockColumns: columns("id"),
				MockRows:    [][]string{{"1"}, {"2"}},
				MockErr:     errBoom,
			}},
			want: want{err: errBoom},
		},
		"NoColumns": {
			reason: "A source with no columns should be rejected.",
			args:   args{src: NewSliceSource(nil, nil)},
			want:   want{err: ErrInvalidInput},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			b := &strings.Builder{}
			err := PrintSource(b, tc.args.src)
			if diff := cmp.Diff(tc.want.err, err, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("\n%s\nPrintSource(...): -want error, +got error:\n%s", tc.reason, diff)
			}
			if diff := cmp.Diff(tc.want.out, b.String()); diff != "" {
				t.Errorf("\n%s\nPrintSource(...): -want, +got:\n%s", tc.reason, diff)
			}
		})
	}
}

func TestSliceSource(t *testing.T) {
	s := NewSliceSource([]string{"a"}, [][]string{{"1"}, {"2"}})

	if _, err := s.Row(); err == nil {
		t.Errorf("Row() before Next(): want error, got nil")
	}

	var got [][]string
	for s.Next() {
		row, err := s.Row()
		if err != nil {
			t.Fatalf("Row(): unexpected error: %v", err)
		}
		got = append(got, row)
	}

	if diff := cmp.Diff([][]string{{"1"}, {"2"}}, got); diff != "" {
		t.Errorf("rows: -want, +got:\n%s", diff)
	}
	if err := s.Err(); err != nil {
		t.Errorf("Err(): unexpected error: %v", err)
	}
}
