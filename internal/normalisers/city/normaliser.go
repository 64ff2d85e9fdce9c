// Package city normalises work and home city columns.
package city

import (
	"strings"

	"github.com/alao-ohio/roster/internal/core/domain"
	"github.com/alao-ohio/roster/internal/core/ports/driven"
	"github.com/alao-ohio/roster/internal/normalisers/text"
)

var _ driven.FieldNormaliser = (*Normaliser)(nil)

// Normaliser cleans city names.
type Normaliser struct{}

// New creates a new city normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Name returns the rule name.
func (n *Normaliser) Name() string {
	return domain.RuleCity.String()
}

// Normalise cleans each city. Missing values become "".
func (n *Normaliser) Normalise(values []domain.Value) []string {
	return text.Column(values, Clean)
}

// Clean lower-cases the whole value, then title-cases it.
func Clean(city string) string {
	return text.TitleCase(strings.ToLower(city))
}
