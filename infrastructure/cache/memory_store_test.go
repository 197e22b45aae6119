package cache_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rathernotsay21/betirement-sub000/domain/model"
	"github.com/rathernotsay21/betirement-sub000/infrastructure/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore[[]model.Video]()
	stored := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	_, ok, err := store.Get(ctx, "channel-videos:UC:10")
	require.NoError(t, err)
	assert.False(t, ok)

	videos := []model.Video{{ID: "a", Title: "A"}}
	require.NoError(t, store.Set(ctx, "channel-videos:UC:10", model.NewCacheEntry(videos, stored)))

	entry, ok, err := store.Get(ctx, "channel-videos:UC:10")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, videos, entry.Data)
	assert.Equal(t, stored.UnixMilli(), entry.Timestamp)

	// expired entries stay readable
	assert.False(t, entry.IsFresh(stored.Add(2*time.Hour), time.Hour))
	_, ok, _ = store.Get(ctx, "channel-videos:UC:10")
	assert.True(t, ok)

	require.NoError(t, store.Clear(ctx))
	_, ok, _ = store.Get(ctx, "channel-videos:UC:10")
	assert.False(t, ok)
}

func TestMemoryStore_Concurrent(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemoryStore[int]().(*cache.MemoryStore[int])
	now := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			key := fmt.Sprintf("k%d", i)
			_ = store.Set(ctx, key, model.NewCacheEntry(i, now))
			_, _, _ = store.Get(ctx, key)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 20, store.Len())
}

func TestCacheEntry_Freshness(t *testing.T) {
	stored := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	entry := model.NewCacheEntry("x", stored)

	assert.True(t, entry.IsFresh(stored.Add(59*time.Minute), time.Hour))
	assert.False(t, entry.IsFresh(stored.Add(time.Hour), time.Hour))
	assert.False(t, entry.IsFresh(stored.Add(61*time.Minute), time.Hour))
}
