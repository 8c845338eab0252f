// Package ratelimiter counts operations per key in fixed time windows.
package ratelimiter

import (
	"sync"
	"time"
)

// Limiter decides whether one more operation for key is allowed now.
type Limiter interface {
	Allow(key string) (bool, time.Duration)
}

type window struct {
	count int
	start time.Time
}

// RateLimiter allows up to limit operations per key in every interval.
type RateLimiter struct {
	limit    int
	interval time.Duration
	now      func() time.Time

	mu        sync.Mutex
	windows   map[string]*window
	lastSweep time.Time
}

var _ Limiter = (*RateLimiter)(nil)

// NewRateLimiter creates a RateLimiter.
func NewRateLimiter(limit int, interval time.Duration) *RateLimiter {
	return &RateLimiter{
		limit:    limit,
		interval: interval,
		now:      time.Now,
		windows:  make(map[string]*window),
	}
}

// Allow records an operation for key. When the limit is exceeded it returns
// false and the time left until the window resets.
func (rl *RateLimiter) Allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	w, ok := rl.windows[key]
	// reset once the interval has passed
	if !ok || now.Sub(w.start) >= rl.interval {
		w = &window{start: now}
		rl.windows[key] = w
		// at most one sweep per interval keeps Allow amortized O(1)
		if now.Sub(rl.lastSweep) >= rl.interval {
			rl.sweep(now)
			rl.lastSweep = now
		}
	}

	w.count++
	if w.count > rl.limit {
		return false, rl.interval - now.Sub(w.start)
	}
	return true, 0
}

// sweep drops expired windows so that the map does not grow with every client.
func (rl *RateLimiter) sweep(now time.Time) {
	for k, w := range rl.windows {
		if now.Sub(w.start) >= rl.interval {
			delete(rl.windows, k)
		}
	}
}
