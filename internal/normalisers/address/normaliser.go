// Package address normalises street address lines.
package address

import (
	"strings"

	"github.com/alao-ohio/roster/internal/core/domain"
	"github.com/alao-ohio/roster/internal/core/ports/driven"
	"github.com/alao-ohio/roster/internal/normalisers/text"
)

var _ driven.FieldNormaliser = (*Normaliser)(nil)

// Normaliser title-cases address lines and repairs two known casings.
type Normaliser struct{}

// New creates a new address normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Name returns the rule name.
func (n *Normaliser) Name() string {
	return domain.RuleAddress.String()
}

// Normalise cleans each line. Missing values become "".
func (n *Normaliser) Normalise(values []domain.Value) []string {
	return text.Column(values, Clean)
}

// Clean title-cases line, then applies at most one fix. When the line holds
// the word " Of ", every "Of" in it is lower-cased, including inside other
// words ("Office Of ..." becomes "office of ..."). Otherwise every "Ohionet"
// becomes "OhioNET".
func Clean(line string) string {
	line = text.TitleCase(line)
	switch {
	case strings.Contains(line, " Of "):
		return strings.ReplaceAll(line, "Of", "of")
	case strings.Contains(line, "Ohionet"):
		return strings.ReplaceAll(line, "Ohionet", "OhioNET")
	default:
		return line
	}
}
