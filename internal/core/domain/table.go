package domain

import "fmt"

// Table is an in-memory roster: ordered column headers and positional rows.
// Every row holds exactly one Value per header.
type Table struct {
	Columns []string
	Rows    [][]Value
}

// NewTable creates a table with the given headers.
// Returns ErrDuplicateColumn if a header repeats.
func NewTable(columns []string) (*Table, error) {
	seen := make(map[string]struct{}, len(columns))
	for _, c := range columns {
		if _, ok := seen[c]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, c)
		}
		seen[c] = struct{}{}
	}
	cols := make([]string, len(columns))
	copy(cols, columns)
	return &Table{Columns: cols}, nil
}

// AppendRow adds a row. Short rows are padded with missing values and
// long rows are rejected.
func (t *Table) AppendRow(row []Value) error {
	if len(row) > len(t.Columns) {
		return fmt.Errorf("%w: row has %d cells, table has %d columns",
			ErrInvalidInput, len(row), len(t.Columns))
	}
	r := make([]Value, len(t.Columns))
	copy(r, row)
	t.Rows = append(t.Rows, r)
	return nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Index returns the position of a column, or -1.
func (t *Table) Index(column string) int {
	for i, c := range t.Columns {
		if c == column {
			return i
		}
	}
	return -1
}

// Has reports whether the table has the column.
func (t *Table) Has(column string) bool {
	return t.Index(column) >= 0
}

// Column returns a copy of the values in a column, in row order.
func (t *Table) Column(column string) ([]Value, error) {
	idx := t.Index(column)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, column)
	}
	values := make([]Value, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[idx]
	}
	return values, nil
}

// SetColumn replaces a column with cleaned text. Cleaned columns never hold
// missing values; an empty string is written instead.
func (t *Table) SetColumn(column string, values []string) error {
	idx := t.Index(column)
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrColumnNotFound, column)
	}
	if len(values) != len(t.Rows) {
		return fmt.Errorf("%w: %q has %d rows, got %d values",
			ErrColumnLength, column, len(t.Rows), len(values))
	}
	for i, v := range values {
		t.Rows[i][idx] = Text(v)
	}
	return nil
}

// Drop removes the named columns and returns the names actually removed.
// Duplicate names are ignored. In strict mode a name that is not present
// fails the whole drop and leaves the table untouched.
func (t *Table) Drop(columns []string, strict bool) ([]string, error) {
	remove := make(map[int]struct{}, len(columns))
	var dropped []string
	for _, c := range columns {
		idx := t.Index(c)
		if idx < 0 {
			if strict {
				return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, c)
			}
			continue
		}
		if _, ok := remove[idx]; ok {
			continue
		}
		remove[idx] = struct{}{}
		dropped = append(dropped, c)
	}
	if len(remove) == 0 {
		return dropped, nil
	}

	keep := make([]int, 0, len(t.Columns)-len(remove))
	for i := range t.Columns {
		if _, ok := remove[i]; !ok {
			keep = append(keep, i)
		}
	}

	cols := make([]string, len(keep))
	for j, i := range keep {
		cols[j] = t.Columns[i]
	}
	for r, row := range t.Rows {
		next := make([]Value, len(keep))
		for j, i := range keep {
			next[j] = row[i]
		}
		t.Rows[r] = next
	}
	t.Columns = cols
	return dropped, nil
}
