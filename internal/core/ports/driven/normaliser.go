package driven

import "github.com/alao-ohio/roster/internal/core/domain"

// FieldNormaliser cleans one column of roster values.
// Implementations are pure: the output depends only on the input, has the
// same length and order, and renders every missing value as "".
type FieldNormaliser interface {
	// Name returns the rule name for logging and configuration.
	Name() string

	// Normalise returns the cleaned text for each value.
	Normalise(values []domain.Value) []string
}
