package brandstore

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ecolife/ecolife-api/internal/domain/brand"
)

func TestMemoryStoreTopSearches(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.IncrementSearch(ctx, "nike", "Nike"))
	require.NoError(t, store.IncrementSearch(ctx, "nike", "NIKE"))
	require.NoError(t, store.IncrementSearch(ctx, "apple", "Apple"))
	require.NoError(t, store.IncrementSearch(ctx, "zara", "Zara"))
	require.NoError(t, store.IncrementSearch(ctx, "", "ignored"))

	top, err := store.TopSearches(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, []brand.TrendingBrand{
		{Name: "Nike", Count: 2},
		{Name: "Apple", Count: 1},
	}, top)

	all, err := store.TopSearches(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
}

func TestMemoryStoreConcurrentIncrements(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.IncrementSearch(ctx, "ikea", "IKEA")
		}()
	}
	wg.Wait()

	top, err := store.TopSearches(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, int64(50), top[0].Count)
}
