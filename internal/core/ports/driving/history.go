package driving

import (
	"context"

	"github.com/alao-ohio/roster/internal/core/domain"
)

// HistoryService reads recorded runs.
type HistoryService interface {
	// List returns the most recent runs first.
	List(ctx context.Context, limit int) ([]domain.Run, error)

	// Get returns one run by ID.
	Get(ctx context.Context, id string) (*domain.Run, error)
}
