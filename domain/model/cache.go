package model

import "time"

// CacheEntry is a cached value with the epoch-millisecond time it was stored
type CacheEntry[T any] struct {
	Data      T     `json:"data"`
	Timestamp int64 `json:"timestamp"`
}

// NewCacheEntry stamps data with now
func NewCacheEntry[T any](data T, now time.Time) CacheEntry[T] {
	return CacheEntry[T]{Data: data, Timestamp: now.UnixMilli()}
}

// Age returns how long ago the entry was stored; a timestamp ahead of now counts as 0
func (e CacheEntry[T]) Age(now time.Time) time.Duration {
	age := now.Sub(time.UnixMilli(e.Timestamp))
	if age < 0 {
		return 0
	}
	return age
}

// IsFresh reports whether the entry is younger than ttl.
// Entries stamped in the future by a writer with a skewed clock are never fresh,
// so the next read refetches and restamps them.
func (e CacheEntry[T]) IsFresh(now time.Time, ttl time.Duration) bool {
	if time.UnixMilli(e.Timestamp).After(now) {
		return false
	}
	return e.Age(now) < ttl
}

// RateLimitWindow is the state of a fixed request window
type RateLimitWindow struct {
	Count       int   `json:"count"`
	WindowStart int64 `json:"windowStart"`
}
