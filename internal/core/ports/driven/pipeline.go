package driven

import (
	"context"

	"github.com/alao-ohio/roster/internal/core/domain"
)

// ColumnPipeline applies field normalisers to their bound table columns.
type ColumnPipeline interface {
	// Apply rewrites every bound column in place, in binding order, and
	// returns statistics for each column processed.
	Apply(ctx context.Context, table *domain.Table) ([]domain.ColumnStats, error)
}
