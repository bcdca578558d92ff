package phytocure_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/phytocure"
	"github.com/fwojciec/phytocure/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsage_Fields(t *testing.T) {
	t.Parallel()

	t.Run("returns both fields in display order", func(t *testing.T) {
		t.Parallel()

		u := &phytocure.Usage{CommonName: "Neem", Uses: "Insecticide"}

		fields := u.Fields()

		require.Len(t, fields, 2)
		assert.Equal(t, phytocure.UsageField{Key: "Common Name", Value: "Neem"}, fields[0])
		assert.Equal(t, phytocure.UsageField{Key: "Uses", Value: "Insecticide"}, fields[1])
	})

	t.Run("skips empty fields", func(t *testing.T) {
		t.Parallel()

		u := &phytocure.Usage{Uses: "Dye"}

		fields := u.Fields()

		require.Len(t, fields, 1)
		assert.Equal(t, "Uses", fields[0].Key)
	})

	t.Run("nil usage is empty", func(t *testing.T) {
		t.Parallel()

		var u *phytocure.Usage

		assert.Empty(t, u.Fields())
		assert.True(t, u.IsEmpty())
	})
}

func TestLookupUsage(t *testing.T) {
	t.Parallel()

	t.Run("returns usage from source", func(t *testing.T) {
		t.Parallel()

		src := &mock.UsageSource{
			FetchUsageFn: func(_ context.Context, plantName string) (*phytocure.Usage, error) {
				assert.Equal(t, "Azadirachta indica", plantName)
				return &phytocure.Usage{CommonName: "Neem"}, nil
			},
		}

		usage := phytocure.LookupUsage(context.Background(), src, "Azadirachta indica")

		assert.Equal(t, "Neem", usage.CommonName)
	})

	t.Run("discards source error and returns empty usage", func(t *testing.T) {
		t.Parallel()

		src := &mock.UsageSource{
			FetchUsageFn: func(_ context.Context, _ string) (*phytocure.Usage, error) {
				return nil, errors.New("connection refused")
			},
		}

		usage := phytocure.LookupUsage(context.Background(), src, "Azadirachta indica")

		require.NotNil(t, usage)
		assert.True(t, usage.IsEmpty())
	})

	t.Run("discards partial result returned with error", func(t *testing.T) {
		t.Parallel()

		src := &mock.UsageSource{
			FetchUsageFn: func(_ context.Context, _ string) (*phytocure.Usage, error) {
				return &phytocure.Usage{CommonName: "Neem"}, errors.New("truncated body")
			},
		}

		usage := phytocure.LookupUsage(context.Background(), src, "Azadirachta indica")

		assert.True(t, usage.IsEmpty())
	})
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	t.Run("keeps short strings intact", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "abc", phytocure.Truncate("abc", 500))
	})

	t.Run("cuts to n characters", func(t *testing.T) {
		t.Parallel()

		s := strings.Repeat("a", 600)

		assert.Len(t, phytocure.Truncate(s, phytocure.MaxFieldLength), 500)
	})

	t.Run("counts runes not bytes", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "फाइ", phytocure.Truncate("फाइटोक्योर", 3))
	})

	t.Run("zero length returns empty string", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, phytocure.Truncate("abc", 0))
	})
}
