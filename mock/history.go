package mock

import (
	"context"

	"github.com/fwojciec/phytocure"
)

var _ phytocure.HistoryService = (*HistoryService)(nil)

// HistoryService is a mock implementation of phytocure.HistoryService.
type HistoryService struct {
	CreateEntryFn   func(ctx context.Context, entry *phytocure.HistoryEntry, compounds []*phytocure.Compound) error
	FindEntriesFn   func(ctx context.Context, filter phytocure.HistoryFilter) ([]*phytocure.HistoryEntry, error)
	DeleteEntriesFn func(ctx context.Context, filter phytocure.HistoryFilter) (int, error)
}

func (s *HistoryService) CreateEntry(ctx context.Context, entry *phytocure.HistoryEntry, compounds []*phytocure.Compound) error {
	return s.CreateEntryFn(ctx, entry, compounds)
}

func (s *HistoryService) FindEntries(ctx context.Context, filter phytocure.HistoryFilter) ([]*phytocure.HistoryEntry, error) {
	return s.FindEntriesFn(ctx, filter)
}

func (s *HistoryService) DeleteEntries(ctx context.Context, filter phytocure.HistoryFilter) (int, error) {
	return s.DeleteEntriesFn(ctx, filter)
}
