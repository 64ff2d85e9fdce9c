// Package table holds cell handling shared by the roster file adapters.
package table

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/alao-ohio/roster/internal/core/domain"
	"github.com/alao-ohio/roster/internal/core/ports/driven"
)

// utf8BOM is stripped from the first header of spreadsheet exports.
const utf8BOM = "\ufeff"

// CellParser turns raw cell text into roster values.
type CellParser struct {
	markers map[string]struct{}
	nfc     bool
}

// NewCellParser creates a parser for the given read options.
func NewCellParser(opts driven.ReadOptions) *CellParser {
	markers := make(map[string]struct{}, len(opts.MissingMarkers))
	for _, m := range opts.MissingMarkers {
		markers[m] = struct{}{}
	}
	return &CellParser{markers: markers, nfc: opts.NormalizeUnicode}
}

// Header normalises a column header.
func (p *CellParser) Header(s string) string {
	s = strings.TrimPrefix(s, utf8BOM)
	if p.nfc {
		s = norm.NFC.String(s)
	}
	return s
}

// Headers normalises a header row.
func (p *CellParser) Headers(raw []string) []string {
	out := make([]string, len(raw))
	for i, h := range raw {
		out[i] = p.Header(h)
	}
	return out
}

// Cell converts cell text to a value. Missing markers match the raw text.
func (p *CellParser) Cell(s string) domain.Value {
	if _, ok := p.markers[s]; ok {
		return domain.Missing()
	}
	if p.nfc {
		s = norm.NFC.String(s)
	}
	return domain.Text(s)
}

// Row converts a record to values.
func (p *CellParser) Row(record []string) []domain.Value {
	row := make([]domain.Value, len(record))
	for i, s := range record {
		row[i] = p.Cell(s)
	}
	return row
}
