// Package phone normalises phone and fax number columns using North American
// Numbering Plan heuristics.
package phone

import (
	"regexp"
	"strings"

	"github.com/alao-ohio/roster/internal/core/domain"
	"github.com/alao-ohio/roster/internal/core/ports/driven"
	"github.com/alao-ohio/roster/internal/normalisers/text"
)

var _ driven.FieldNormaliser = (*Normaliser)(nil)

const (
	localDigits    = 7
	nationalDigits = 10
)

var (
	reNonDigit = regexp.MustCompile(`[^0-9]`)

	// Each pattern rewrites only the prefix it matches; trailing digits are kept.
	reCountryCode = regexp.MustCompile(`^1([0-9]{3})([0-9]{3})([0-9]{4})`)
	reLocal       = regexp.MustCompile(`^([0-9]{3})([0-9]{4})`)
	reNational    = regexp.MustCompile(`^([0-9]{3})([0-9]{3})([0-9]{4})`)
	reExtension   = regexp.MustCompile(`^([0-9]{3})([0-9]{3})([0-9]{4})([0-9])`)
)

// Normaliser formats phone numbers as NXX-NXX-XXXX and friends.
type Normaliser struct{}

// New creates a new phone normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// Name returns the rule name.
func (n *Normaliser) Name() string {
	return domain.RulePhone.String()
}

// Normalise cleans each number. Missing values become "".
func (n *Normaliser) Normalise(values []domain.Value) []string {
	return text.Column(values, Clean)
}

// Clean strips everything but ASCII digits and formats the rest:
//
//	leading 0, or fewer than 7 digits   ""
//	leading 1                           1-NXX-NXX-XXXX
//	7 digits                            NXX-XXXX
//	10 digits                           NXX-NXX-XXXX
//	more than 10 digits                 NXX-NXX-XXXX xD
//	8 or 9 digits                       ""
//
// NANP does not allow 0 or 1 as the first digit of an area code, so a
// leading 1 is read as the country code. Only one digit after the tenth is
// captured as the extension marker.
func Clean(number string) string {
	digits := reNonDigit.ReplaceAllString(number, "")

	switch {
	case strings.HasPrefix(digits, "0") || len(digits) < localDigits:
		return ""
	case strings.HasPrefix(digits, "1"):
		return reCountryCode.ReplaceAllString(digits, "1-$1-$2-$3")
	case len(digits) == localDigits:
		return reLocal.ReplaceAllString(digits, "$1-$2")
	case len(digits) == nationalDigits:
		return reNational.ReplaceAllString(digits, "$1-$2-$3")
	case len(digits) > nationalDigits:
		return reExtension.ReplaceAllString(digits, "$1-$2-$3 x$4")
	default:
		return ""
	}
}
