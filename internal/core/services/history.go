package services

import (
	"context"

	"github.com/alao-ohio/roster/internal/core/domain"
	"github.com/alao-ohio/roster/internal/core/ports/driven"
	"github.com/alao-ohio/roster/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// HistoryService reads recorded clean runs.
type HistoryService struct {
	runs driven.RunStore
}

// NewHistoryService creates a new history service.
func NewHistoryService(runs driven.RunStore) *HistoryService {
	return &HistoryService{runs: runs}
}

// List returns the most recent runs first, at most limit.
func (s *HistoryService) List(ctx context.Context, limit int) ([]domain.Run, error) {
	return s.runs.ListRuns(ctx, limit)
}

// Get returns one run by ID.
func (s *HistoryService) Get(ctx context.Context, id string) (*domain.Run, error) {
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.runs.GetRun(ctx, id)
}
