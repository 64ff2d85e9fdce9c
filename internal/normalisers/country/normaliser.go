// Package country normalises work and home country columns.
package country

import (
	"strings"

	"github.com/alao-ohio/roster/internal/core/domain"
	"github.com/alao-ohio/roster/internal/core/ports/driven"
	"github.com/alao-ohio/roster/internal/normalisers/text"
)

var _ driven.FieldNormaliser = (*Normaliser)(nil)

// USA is the canonical token for U-prefixed countries.
const USA = "USA"

// Normaliser upper-cases countries and collapses U-prefixed values to USA.
type Normaliser struct{}

// New creates a new country normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Name returns the rule name.
func (n *Normaliser) Name() string {
	return domain.RuleCountry.String()
}

// Normalise cleans each country. Missing values become "".
func (n *Normaliser) Normalise(values []domain.Value) []string {
	return text.Column(values, Clean)
}

// Clean maps anything starting with u or U to USA ("US", "U.S.A.",
// "United States", and also "United Kingdom") and upper-cases the rest.
func Clean(country string) string {
	if strings.HasPrefix(country, "u") || strings.HasPrefix(country, "U") {
		return USA
	}
	return strings.ToUpper(country)
}
