package pipeline

import (
	"fmt"
	"slices"

	"github.com/alao-ohio/roster/internal/core/domain"
	"github.com/alao-ohio/roster/internal/core/ports/driven"
)

// BuilderFunc creates a FieldNormaliser from generic config.
// Config is a map of rule-specific settings parsed from user config.
type BuilderFunc func(cfg map[string]any) (driven.FieldNormaliser, error)

// Registry maps rule names to their builders.
// It allows dynamic construction of normalisers from configuration.
type Registry struct {
	builders map[string]BuilderFunc
}

// NewRegistry creates a new normaliser registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
	}
}

// Register adds a normaliser builder to the registry.
// Name should be unique and match the normaliser's Name() return value.
func (r *Registry) Register(name string, builder BuilderFunc) {
	r.builders[name] = builder
}

// Build creates a normaliser by name with the given config.
// Returns domain.ErrUnknownRule if the name is not registered.
func (r *Registry) Build(name string, cfg map[string]any) (driven.FieldNormaliser, error) {
	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownRule, name)
	}
	return builder(cfg)
}

// Has returns true if a normaliser with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.builders[name]
	return ok
}

// Names returns all registered rule names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
