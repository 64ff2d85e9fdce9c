// Package postal normalises US zip code columns.
package postal

import (
	"strings"

	"github.com/alao-ohio/roster/internal/core/domain"
	"github.com/alao-ohio/roster/internal/core/ports/driven"
	"github.com/alao-ohio/roster/internal/normalisers/text"
)

var _ driven.FieldNormaliser = (*Normaliser)(nil)

// minLength is the shortest trimmed value accepted as a zip.
const minLength = 5

// Normaliser keeps five-digit zip prefixes and blanks anything else.
type Normaliser struct{}

// New creates a new postal code normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Name returns the rule name.
func (n *Normaliser) Name() string {
	return domain.RulePostal.String()
}

// Normalise cleans each zip. Missing values become "".
func (n *Normaliser) Normalise(values []domain.Value) []string {
	return text.Column(values, Clean)
}

// Clean returns the first five characters of a zip, or "" when the value is
// too short once trimmed or contains a space anywhere (spaced ZIP+4 and
// non-US codes are rejected, not parsed). The space check and the truncation
// both look at the value as given, not the trimmed copy.
func Clean(zip string) string {
	if text.RuneLen(strings.TrimSpace(zip)) < minLength {
		return ""
	}
	if strings.Contains(zip, " ") {
		return ""
	}
	return text.Prefix(zip, minLength)
}
