package mock

import (
	"context"

	"github.com/fwojciec/phytocure"
)

var _ phytocure.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of phytocure.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, plantName string) (*phytocure.Report, error)
}

func (s *Searcher) Search(ctx context.Context, plantName string) (*phytocure.Report, error) {
	return s.SearchFn(ctx, plantName)
}
