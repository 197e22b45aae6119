package repository

import (
	"context"

	"github.com/rathernotsay21/betirement-sub000/domain/model"
)

// ICacheStore keeps cache entries by key. Freshness is judged by the caller
// from the entry timestamp, so stores return expired entries too.
type ICacheStore[T any] interface {
	// Get returns the entry for key and whether it exists
	Get(ctx context.Context, key string) (model.CacheEntry[T], bool, error)
	// Set stores or replaces the entry for key
	Set(ctx context.Context, key string, entry model.CacheEntry[T]) error
	// Clear removes every entry
	Clear(ctx context.Context) error
}

// IRateLimiter guards the provider request budget
type IRateLimiter interface {
	// Allow consumes one unit of budget when available. A denied call consumes nothing.
	Allow(ctx context.Context) (bool, error)
	// Window returns a snapshot of the current window
	Window(ctx context.Context) (model.RateLimitWindow, error)
}
