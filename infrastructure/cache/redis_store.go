package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rathernotsay21/betirement-sub000/domain/model"
	"github.com/rathernotsay21/betirement-sub000/domain/repository"

	"github.com/redis/go-redis/v9"
)

const scanBatch = 100

// RedisStore shares cache entries between instances. Entries are stored as
// JSON under prefix+key.
type RedisStore[T any] struct {
	client    redis.UniversalClient
	prefix    string
	retention time.Duration
}

// NewRedisStore creates a redis backed store. retention bounds how long redis
// keeps an entry; 0 keeps it until Clear, like the memory store. It must be
// well above the freshness TTL or stale fallbacks disappear with the key.
func NewRedisStore[T any](client redis.UniversalClient, prefix string, retention time.Duration) repository.ICacheStore[T] {
	return &RedisStore[T]{client: client, prefix: prefix, retention: retention}
}

func (s *RedisStore[T]) Get(ctx context.Context, key string) (model.CacheEntry[T], bool, error) {
	var entry model.CacheEntry[T]
	raw, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return entry, false, nil
	}
	if err != nil {
		return entry, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, &entry); err != nil {
		return entry, false, fmt.Errorf("decode cache entry %s: %w", key, err)
	}
	return entry, true, nil
}

func (s *RedisStore[T]) Set(ctx context.Context, key string, entry model.CacheEntry[T]) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encode cache entry %s: %w", key, err)
	}
	if err := s.client.Set(ctx, s.prefix+key, raw, s.retention).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Clear deletes every key under the store prefix
func (s *RedisStore[T]) Clear(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := s.client.Scan(ctx, cursor, s.prefix+"*", scanBatch).Result()
		if err != nil {
			return fmt.Errorf("redis scan: %w", err)
		}
		if len(keys) > 0 {
			if err := s.client.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("redis del: %w", err)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}
