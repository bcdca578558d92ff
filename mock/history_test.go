package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/phytocure"
	"github.com/fwojciec/phytocure/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryService_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ phytocure.HistoryService = &mock.HistoryService{}
}

func TestHistoryService_CreateEntry(t *testing.T) {
	t.Parallel()

	t.Run("delegates to CreateEntryFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *phytocure.HistoryEntry
		s := &mock.HistoryService{
			CreateEntryFn: func(_ context.Context, entry *phytocure.HistoryEntry, _ []*phytocure.Compound) error {
				calledWith = entry
				return nil
			},
		}

		entry := &phytocure.HistoryEntry{PlantName: "Curcuma longa"}

		err := s.CreateEntry(context.Background(), entry, nil)

		require.NoError(t, err)
		assert.Equal(t, entry, calledWith)
	})
}
