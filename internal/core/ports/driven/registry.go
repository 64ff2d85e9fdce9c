package driven

import "github.com/alao-ohio/roster/internal/core/domain"

// PipelineFactory builds normalisers and column pipelines by rule name.
type PipelineFactory interface {
	// Build constructs a pipeline for the bindings. ruleConfig holds
	// per-rule settings keyed by rule name.
	// Returns domain.ErrUnknownRule if a binding names an unregistered rule.
	Build(bindings []domain.ColumnBinding, ruleConfig map[string]map[string]any) (ColumnPipeline, error)

	// Normaliser builds a single normaliser.
	Normaliser(rule string, cfg map[string]any) (FieldNormaliser, error)

	// Rules returns the registered rule names, sorted.
	Rules() []string
}
