// Package text holds the string helpers shared by the field normalisers.
package text

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/alao-ohio/roster/internal/core/domain"
)

// Column applies fn to every present value. Missing values become "".
func Column(values []domain.Value, fn func(string) string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		if !v.Valid {
			continue
		}
		out[i] = fn(v.String)
	}
	return out
}

// TitleCase upper-cases every letter that does not follow a cased letter and
// lower-cases the rest. Word boundaries are any non-cased rune, so
// "osu-newark/cotc" becomes "Osu-Newark/Cotc" and "o'brien" becomes "O'Brien".
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	prevCased := false
	for _, r := range s {
		if prevCased {
			b.WriteRune(unicode.ToLower(r))
		} else {
			b.WriteRune(unicode.ToTitle(r))
		}
		prevCased = isCased(r)
	}
	return b.String()
}

func isCased(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
}

// Prefix returns the first n runes of s, or all of s if it is shorter.
func Prefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}

// RuneLen returns the number of runes in s.
func RuneLen(s string) int {
	return utf8.RuneCountInString(s)
}
