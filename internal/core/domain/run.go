package domain

import "time"

// Run is the recorded outcome of one clean.
type Run struct {
	// ID is the unique identifier for the run.
	ID string

	// InputPath and OutputPath are the files actually used.
	InputPath  string
	OutputPath string

	// StartedAt is when the run started.
	StartedAt time.Time

	// EndedAt is when the run finished, successfully or not.
	EndedAt time.Time

	// Rows is the number of roster rows processed.
	Rows int

	// Dropped lists the columns removed before cleaning.
	Dropped []string

	// Columns holds per-column statistics in pipeline order.
	Columns []ColumnStats

	// Error contains the failure message, empty on success.
	Error string
}

// Succeeded reports whether the run completed without error.
func (r *Run) Succeeded() bool {
	return r.Error == ""
}

// Duration returns how long the run took.
func (r *Run) Duration() time.Duration {
	if r.EndedAt.IsZero() {
		return 0
	}
	return r.EndedAt.Sub(r.StartedAt)
}

// Changed returns the total number of cells rewritten across all columns.
func (r *Run) Changed() int {
	n := 0
	for _, c := range r.Columns {
		n += c.Changed
	}
	return n
}

// ColumnStats summarises what one normaliser did to one column.
type ColumnStats struct {
	Column string
	Rule   string

	// Missing counts cells that were absent on input.
	Missing int

	// Changed counts present cells whose text was rewritten.
	Changed int

	// Blanked counts present, non-empty cells rejected as invalid.
	Blanked int
}

// Tally computes column statistics from the input and cleaned values.
func Tally(column, rule string, in []Value, out []string) ColumnStats {
	stats := ColumnStats{Column: column, Rule: rule}
	for i, v := range in {
		if !v.Valid {
			stats.Missing++
			continue
		}
		if i >= len(out) {
			break
		}
		if out[i] != v.String {
			stats.Changed++
			if out[i] == "" {
				stats.Blanked++
			}
		}
	}
	return stats
}
