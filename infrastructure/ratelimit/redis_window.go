package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rathernotsay21/betirement-sub000/domain/model"
	"github.com/rathernotsay21/betirement-sub000/domain/repository"
	"github.com/rathernotsay21/betirement-sub000/infrastructure/utils"

	"github.com/redis/go-redis/v9"
)

// allowScript checks and increments the shared counter atomically. The key
// expires with the window, so the first INCR of a new window starts it.
var allowScript = redis.NewScript(`
local count = tonumber(redis.call('GET', KEYS[1]) or '0')
if count >= tonumber(ARGV[1]) then
  return 0
end
count = redis.call('INCR', KEYS[1])
if count == 1 then
  redis.call('PEXPIRE', KEYS[1], ARGV[2])
end
return 1
`)

// RedisFixedWindow is a fixed window shared by every instance using the same key
type RedisFixedWindow struct {
	client redis.UniversalClient
	key    string
	max    int
	window time.Duration
	clock  utils.Clock
}

func NewRedisFixedWindow(client redis.UniversalClient, key string, maxRequests int, window time.Duration, clock utils.Clock) repository.IRateLimiter {
	if maxRequests <= 0 {
		maxRequests = DefaultMaxRequests
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &RedisFixedWindow{
		client: client,
		key:    key,
		max:    maxRequests,
		window: window,
		clock:  utils.ClockOrDefault(clock),
	}
}

// Allow denies the call when redis cannot be reached
func (r *RedisFixedWindow) Allow(ctx context.Context) (bool, error) {
	allowed, err := allowScript.Run(ctx, r.client, []string{r.key}, r.max, r.window.Milliseconds()).Int()
	if err != nil {
		return false, fmt.Errorf("rate limit check: %w", err)
	}
	return allowed == 1, nil
}

func (r *RedisFixedWindow) Window(ctx context.Context) (model.RateLimitWindow, error) {
	now := r.clock()
	count, err := r.client.Get(ctx, r.key).Int()
	if errors.Is(err, redis.Nil) {
		return model.RateLimitWindow{WindowStart: now.UnixMilli()}, nil
	}
	if err != nil {
		return model.RateLimitWindow{}, fmt.Errorf("rate limit window: %w", err)
	}
	ttl, err := r.client.PTTL(ctx, r.key).Result()
	if err != nil {
		return model.RateLimitWindow{}, fmt.Errorf("rate limit window ttl: %w", err)
	}
	start := now
	if ttl > 0 {
		start = now.Add(ttl - r.window)
	}
	return model.RateLimitWindow{Count: count, WindowStart: start.UnixMilli()}, nil
}
