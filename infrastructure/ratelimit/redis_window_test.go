package ratelimit_test

import (
	"context"
	"testing"
	"time"

	"github.com/rathernotsay21/betirement-sub000/infrastructure/ratelimit"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisFixedWindow(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	limiter := ratelimit.NewRedisFixedWindow(client, "betirement:ratelimit", 3, time.Minute, nil)
	other := ratelimit.NewRedisFixedWindow(client, "betirement:ratelimit", 3, time.Minute, nil)

	for i := 0; i < 2; i++ {
		ok, err := limiter.Allow(ctx)
		require.NoError(t, err)
		assert.True(t, ok)
	}
	ok, err := other.Allow(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = limiter.Allow(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	w, err := other.Window(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, w.Count)

	mr.FastForward(61 * time.Second)

	ok, err = limiter.Allow(ctx)
	require.NoError(t, err)
	assert.True(t, ok)

	w, err = limiter.Window(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, w.Count)
}

func TestRedisFixedWindow_FailsClosed(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()

	limiter := ratelimit.NewRedisFixedWindow(client, "k", 3, time.Minute, nil)
	ok, err := limiter.Allow(context.Background())
	assert.Error(t, err)
	assert.False(t, ok)
}
