// Package organization normalises the organization column.
//
// Values are title-cased and then looked up, by exact case-sensitive match,
// in an alias table of canonical spellings for acronyms and mixed-case
// institution names. Unmatched values stay in plain title case.
package organization

import (
	"maps"

	"github.com/alao-ohio/roster/internal/core/domain"
	"github.com/alao-ohio/roster/internal/core/ports/driven"
	"github.com/alao-ohio/roster/internal/normalisers/text"
)

var _ driven.FieldNormaliser = (*Normaliser)(nil)

// defaultAliases maps title-cased organization names to their canonical spelling.
var defaultAliases = map[string]string{
	"Ohionet":         "OhioNET",
	"Ohiolink":        "OhioLINK",
	"Oclc":            "OCLC",
	"Lexisnexis":      "LexisNexis",
	"Proquest":        "ProQuest",
	"Ebsco":           "EBSCO",
	"Olssi":           "OLSSI",
	"Utc":             "UTC",
	"Osu-Newark/Cotc": "OSU-Newark/COTC",
	"Bgsu":            "BGSU",
	"Uw-M":            "UW-M",
	"Osu Libraries":   "OSU Libraries",
	"Pbs":             "PBS",
	"Ala And Acrl":    "ALA and ACRL",
	"Infohio":         "INFOhio",
	"Cwru":            "CWRU",
	"Osu":             "OSU",
	"Mla":             "MLA",
	"Sscc":            "SSCC",
	"Onu":             "ONU",
	"Ksu Slis":        "KSU SLIS",
}

// DefaultAliases returns a copy of the built-in alias table.
func DefaultAliases() map[string]string {
	return maps.Clone(defaultAliases)
}

// Normaliser title-cases organization names and applies the alias table.
// The table is fixed at construction and never mutated.
type Normaliser struct {
	aliases map[string]string
}

// Option configures the organization normaliser.
type Option func(*Normaliser)

// WithAliases adds entries to the alias table, replacing built-in entries
// with the same key. Keys are title-cased so they line up with cleaned values.
func WithAliases(aliases map[string]string) Option {
	return func(n *Normaliser) {
		for k, v := range aliases {
			n.aliases[text.TitleCase(k)] = v
		}
	}
}

// New creates a new organization normaliser with the given options.
func New(opts ...Option) *Normaliser {
	n := &Normaliser{
		aliases: DefaultAliases(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Name returns the rule name.
func (n *Normaliser) Name() string {
	return domain.RuleOrganization.String()
}

// Normalise cleans each organization. Missing values become "".
func (n *Normaliser) Normalise(values []domain.Value) []string {
	return text.Column(values, n.Clean)
}

// Clean title-cases org and swaps in its canonical spelling when known.
func (n *Normaliser) Clean(org string) string {
	titled := text.TitleCase(org)
	if canonical, ok := n.aliases[titled]; ok {
		return canonical
	}
	return titled
}
