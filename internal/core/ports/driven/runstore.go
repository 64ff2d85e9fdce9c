package driven

import (
	"context"

	"github.com/alao-ohio/roster/internal/core/domain"
)

// RunStore persists clean run history.
type RunStore interface {
	// SaveRun stores or updates a run.
	SaveRun(ctx context.Context, run *domain.Run) error

	// GetRun retrieves a run by ID.
	// Returns domain.ErrNotFound if the run does not exist.
	GetRun(ctx context.Context, id string) (*domain.Run, error)

	// ListRuns returns the most recent runs first, at most limit.
	// A limit of zero or less returns all runs.
	ListRuns(ctx context.Context, limit int) ([]domain.Run, error)
}
