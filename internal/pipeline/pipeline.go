// Package pipeline binds roster columns to field normalisers and applies them.
package pipeline

import (
	"context"
	"fmt"

	"github.com/alao-ohio/roster/internal/core/domain"
	"github.com/alao-ohio/roster/internal/core/ports/driven"
	"github.com/alao-ohio/roster/internal/logger"
)

// Ensure Pipeline implements the interface.
var _ driven.ColumnPipeline = (*Pipeline)(nil)

// Step routes one column through one normaliser.
type Step struct {
	Column     string
	Normaliser driven.FieldNormaliser
}

// Pipeline runs its steps in order over a table.
// Steps are independent: no step reads a column another step writes.
type Pipeline struct {
	steps []Step
}

// NewPipeline creates a pipeline with the given steps.
// Steps are executed in the order provided.
func NewPipeline(steps ...Step) *Pipeline {
	return &Pipeline{
		steps: steps,
	}
}

// Apply replaces each bound column with its normalised values.
// A bound column missing from the table fails the whole run.
func (p *Pipeline) Apply(ctx context.Context, table *domain.Table) ([]domain.ColumnStats, error) {
	if table == nil {
		return nil, fmt.Errorf("table is nil")
	}

	stats := make([]domain.ColumnStats, 0, len(p.steps))
	for _, step := range p.steps {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		values, err := table.Column(step.Column)
		if err != nil {
			return stats, fmt.Errorf("normaliser %s: %w", step.Normaliser.Name(), err)
		}

		cleaned := step.Normaliser.Normalise(values)
		if err := table.SetColumn(step.Column, cleaned); err != nil {
			return stats, fmt.Errorf("normaliser %s: %w", step.Normaliser.Name(), err)
		}

		s := domain.Tally(step.Column, step.Normaliser.Name(), values, cleaned)
		logger.Debug("%s [%s]: %d changed, %d blanked, %d missing",
			s.Column, s.Rule, s.Changed, s.Blanked, s.Missing)
		stats = append(stats, s)
	}

	return stats, nil
}

// Add appends a step to the pipeline.
func (p *Pipeline) Add(step Step) {
	p.steps = append(p.steps, step)
}

// Len returns the number of steps in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.steps)
}

// Build constructs a pipeline from column bindings. Normalisers are built once
// per rule and shared between the columns bound to it; ruleConfig supplies
// per-rule builder settings keyed by rule name.
func Build(r *Registry, bindings []domain.ColumnBinding, ruleConfig map[string]map[string]any) (*Pipeline, error) {
	built := make(map[domain.Rule]driven.FieldNormaliser)
	p := NewPipeline()

	for _, b := range bindings {
		n, ok := built[b.Rule]
		if !ok {
			var err error
			n, err = r.Build(b.Rule.String(), ruleConfig[b.Rule.String()])
			if err != nil {
				return nil, fmt.Errorf("column %q: %w", b.Column, err)
			}
			built[b.Rule] = n
		}
		p.Add(Step{Column: b.Column, Normaliser: n})
	}

	return p, nil
}
