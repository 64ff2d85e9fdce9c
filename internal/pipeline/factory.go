package pipeline

import (
	"github.com/alao-ohio/roster/internal/core/domain"
	"github.com/alao-ohio/roster/internal/core/ports/driven"
)

// Ensure Factory implements the interface.
var _ driven.PipelineFactory = (*Factory)(nil)

// Factory exposes a Registry through the driven.PipelineFactory port.
type Factory struct {
	registry *Registry
}

// NewFactory creates a factory over r. A nil registry uses DefaultRegistry.
func NewFactory(r *Registry) *Factory {
	if r == nil {
		r = DefaultRegistry()
	}
	return &Factory{registry: r}
}

// Build constructs a pipeline for the bindings.
func (f *Factory) Build(bindings []domain.ColumnBinding, ruleConfig map[string]map[string]any) (driven.ColumnPipeline, error) {
	p, err := Build(f.registry, bindings, ruleConfig)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Normaliser builds a single normaliser.
func (f *Factory) Normaliser(rule string, cfg map[string]any) (driven.FieldNormaliser, error) {
	return f.registry.Build(rule, cfg)
}

// Rules returns the registered rule names, sorted.
func (f *Factory) Rules() []string {
	return f.registry.Names()
}
