package csv

import (
	"context"
	stdcsv "encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alao-ohio/roster/internal/adapters/driven/table"
	"github.com/alao-ohio/roster/internal/core/domain"
	"github.com/alao-ohio/roster/internal/core/ports/driven"
)

// Extension is the file extension handled by this package.
const Extension = ".csv"

// Ensure Reader implements the interface.
var _ driven.TableReader = (*Reader)(nil)

// Reader loads CSV roster exports.
type Reader struct{}

// NewReader creates a CSV reader.
func NewReader() *Reader {
	return &Reader{}
}

// Extensions returns the handled extensions.
func (r *Reader) Extensions() []string {
	return []string{Extension}
}

// Read parses the CSV file at path. The first record is the header.
func (r *Reader) Read(ctx context.Context, path string, opts driven.ReadOptions) (*domain.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return Decode(ctx, f, opts)
}

// Decode parses CSV from src.
func Decode(ctx context.Context, src io.Reader, opts driven.ReadOptions) (*domain.Table, error) {
	cr := stdcsv.NewReader(src)
	// Short rows are padded by the table, long rows rejected there
	cr.FieldsPerRecord = -1
	// Quotes inside unquoted fields are kept as text
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	parser := table.NewCellParser(opts)

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: no header row", domain.ErrInvalidInput)
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	t, err := domain.NewTable(parser.Headers(header))
	if err != nil {
		return nil, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading record: %w", err)
		}

		if err := t.AppendRow(parser.Row(record)); err != nil {
			line, _ := cr.FieldPos(0)
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
	}

	return t, nil
}
