package csv

import (
	"context"
	stdcsv "encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alao-ohio/roster/internal/core/domain"
	"github.com/alao-ohio/roster/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.TableWriter = (*Writer)(nil)

// Writer stores cleaned rosters as CSV.
type Writer struct{}

// NewWriter creates a CSV writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Extensions returns the handled extensions.
func (w *Writer) Extensions() []string {
	return []string{Extension}
}

// Write stores the table at path, creating parent directories.
// An existing file is replaced.
func (w *Writer) Write(ctx context.Context, path string, t *domain.Table, opts driven.WriteOptions) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := Encode(ctx, f, t, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Encode writes t to dst as CSV.
func Encode(ctx context.Context, dst io.Writer, t *domain.Table, opts driven.WriteOptions) error {
	cw := stdcsv.NewWriter(dst)

	offset := 0
	if opts.Index {
		offset = 1
	}
	record := make([]string, len(t.Columns)+offset)

	// The index column has an empty header
	copy(record[offset:], t.Columns)
	if err := cw.Write(record); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range t.Rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		if opts.Index {
			record[0] = strconv.Itoa(i)
		}
		for j, v := range row {
			record[offset+j] = v.Or("")
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
