package driven

import (
	"context"

	"github.com/alao-ohio/roster/internal/core/domain"
)

// TableReader loads a roster file into memory.
type TableReader interface {
	// Extensions returns the lower-case file extensions handled, with dot.
	Extensions() []string

	// Read parses the file at path. Cells matching opts.MissingMarkers
	// become missing values.
	Read(ctx context.Context, path string, opts ReadOptions) (*domain.Table, error)
}

// ReadOptions controls how cell text is interpreted.
type ReadOptions struct {
	// MissingMarkers are exact cell texts read as missing values.
	MissingMarkers []string

	// NormalizeUnicode applies NFC to headers and cells.
	NormalizeUnicode bool
}

// TableWriter persists a cleaned roster.
type TableWriter interface {
	// Extensions returns the lower-case file extensions handled, with dot.
	Extensions() []string

	// Write stores the table at path, creating parent directories.
	Write(ctx context.Context, path string, table *domain.Table, opts WriteOptions) error
}

// WriteOptions controls output layout.
type WriteOptions struct {
	// Index prepends an unnamed column holding the zero-based row number.
	Index bool

	// RunID tags the written snapshot, where the format supports it.
	RunID string
}
