package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/rathernotsay21/betirement-sub000/domain/model"
	"github.com/rathernotsay21/betirement-sub000/domain/repository"
	"github.com/rathernotsay21/betirement-sub000/infrastructure/utils"
)

const (
	DefaultMaxRequests = 50
	DefaultWindow      = 60 * time.Second
)

// FixedWindow allows at most max requests per window in this process.
// The window restarts on the first call observed after it has expired.
type FixedWindow struct {
	mu     sync.Mutex
	max    int
	window time.Duration
	clock  utils.Clock
	state  model.RateLimitWindow
}

func NewFixedWindow(maxRequests int, window time.Duration, clock utils.Clock) repository.IRateLimiter {
	if maxRequests <= 0 {
		maxRequests = DefaultMaxRequests
	}
	if window <= 0 {
		window = DefaultWindow
	}
	clock = utils.ClockOrDefault(clock)
	return &FixedWindow{
		max:    maxRequests,
		window: window,
		clock:  clock,
		state:  model.RateLimitWindow{WindowStart: clock().UnixMilli()},
	}
}

func (f *FixedWindow) Allow(_ context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.roll(f.clock())
	if f.state.Count >= f.max {
		return false, nil
	}
	f.state.Count++
	return true, nil
}

func (f *FixedWindow) Window(_ context.Context) (model.RateLimitWindow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.roll(f.clock())
	return f.state, nil
}

// roll must be called with mu held
func (f *FixedWindow) roll(now time.Time) {
	if now.UnixMilli()-f.state.WindowStart > f.window.Milliseconds() {
		f.state = model.RateLimitWindow{Count: 0, WindowStart: now.UnixMilli()}
	}
}
