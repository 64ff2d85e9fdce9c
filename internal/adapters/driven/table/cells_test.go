package table

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alao-ohio/roster/internal/core/domain"
	"github.com/alao-ohio/roster/internal/core/ports/driven"
)

func TestCellParser_Cell(t *testing.T) {
	p := NewCellParser(driven.ReadOptions{
		MissingMarkers:   domain.DefaultMissingMarkers(),
		NormalizeUnicode: true,
	})

	tests := []struct {
		in   string
		want domain.Value
	}{
		{"", domain.Missing()},
		{"NA", domain.Missing()},
		{"n/a", domain.Missing()},
		{"NaN", domain.Missing()},
		{" NA", domain.Text(" NA")},
		{"Na", domain.Text("Na")},
		{"Columbus", domain.Text("Columbus")},
		// e + combining acute composes to a single rune
		{"Jose\u0301", domain.Text("Jos\u00e9")},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Cell(tt.in))
		})
	}
}

func TestCellParser_WithoutNFC(t *testing.T) {
	p := NewCellParser(driven.ReadOptions{})

	assert.Equal(t, domain.Text("Jose\u0301"), p.Cell("Jose\u0301"))
	// No markers configured: empty text stays present
	assert.Equal(t, domain.Text(""), p.Cell(""))
}

func TestCellParser_Headers(t *testing.T) {
	p := NewCellParser(driven.ReadOptions{NormalizeUnicode: true})

	got := p.Headers([]string{"\ufeffFirst name", "Last name"})

	assert.Equal(t, []string{"First name", "Last name"}, got)
}
