// Package state normalises province/state columns.
package state

import (
	"strings"

	"github.com/alao-ohio/roster/internal/core/domain"
	"github.com/alao-ohio/roster/internal/core/ports/driven"
	"github.com/alao-ohio/roster/internal/normalisers/text"
)

var _ driven.FieldNormaliser = (*Normaliser)(nil)

// Normaliser reduces states to upper-case two-character codes.
type Normaliser struct{}

// New creates a new state normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Name returns the rule name.
func (n *Normaliser) Name() string {
	return domain.RuleState.String()
}

// Normalise cleans each state. Missing values become "".
func (n *Normaliser) Normalise(values []domain.Value) []string {
	return text.Column(values, Clean)
}

// Clean keeps the first two characters, upper-cased. Full names only work
// when their first two letters are the postal code ("Ohio" -> "OH"), and
// shorter input is returned short rather than rejected.
func Clean(state string) string {
	return strings.ToUpper(text.Prefix(state, 2))
}
