package mock

import (
	"context"

	"github.com/fwojciec/phytocure"
)

var _ phytocure.CompoundSource = (*CompoundSource)(nil)

// CompoundSource is a mock implementation of phytocure.CompoundSource.
type CompoundSource struct {
	FetchCompoundsFn func(ctx context.Context, plantName string) ([]*phytocure.Compound, error)
}

func (s *CompoundSource) FetchCompounds(ctx context.Context, plantName string) ([]*phytocure.Compound, error) {
	return s.FetchCompoundsFn(ctx, plantName)
}

var _ phytocure.UsageSource = (*UsageSource)(nil)

// UsageSource is a mock implementation of phytocure.UsageSource.
type UsageSource struct {
	FetchUsageFn func(ctx context.Context, plantName string) (*phytocure.Usage, error)
}

func (s *UsageSource) FetchUsage(ctx context.Context, plantName string) (*phytocure.Usage, error) {
	return s.FetchUsageFn(ctx, plantName)
}
