// Package name normalises personal name columns.
package name

import (
	"github.com/alao-ohio/roster/internal/core/domain"
	"github.com/alao-ohio/roster/internal/core/ports/driven"
	"github.com/alao-ohio/roster/internal/normalisers/text"
)

// Ensure Normaliser implements the interface.
var _ driven.FieldNormaliser = (*Normaliser)(nil)

// Normaliser title-cases first and last names.
type Normaliser struct{}

// New creates a new name normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Name returns the rule name.
func (n *Normaliser) Name() string {
	return domain.RuleName.String()
}

// Normalise title-cases every present value.
func (n *Normaliser) Normalise(values []domain.Value) []string {
	return text.Column(values, Clean)
}

// Clean title-cases a single name.
func Clean(name string) string {
	return text.TitleCase(name)
}
