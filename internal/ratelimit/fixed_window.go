package ratelimit

import (
	"context"
	"sync"
	"time"
)

// FixedWindow is a process-local fixed-window counter keyed by client IP.
//
// Windows are fixed, not sliding: up to 2×limit requests can pass across a
// window boundary. State is per-process, so horizontal scaling weakens the
// limit — use RedisLimiter for multi-instance deployments.
type FixedWindow struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu      sync.Mutex
	entries map[string]*windowEntry
}

type windowEntry struct {
	count     int
	resetTime time.Time
}

// NewFixedWindow creates a limiter allowing limit requests per window per key
// and starts a background sweep that evicts expired entries.
func NewFixedWindow(limit int, window time.Duration) *FixedWindow {
	fw := newFixedWindow(limit, window)
	go fw.sweepLoop()
	return fw
}

// newFixedWindow creates the limiter without the sweep goroutine (tests).
func newFixedWindow(limit int, window time.Duration) *FixedWindow {
	return &FixedWindow{
		limit:   limit,
		window:  window,
		now:     time.Now,
		entries: make(map[string]*windowEntry),
	}
}

// Allow implements Limiter. It never returns an error.
func (fw *FixedWindow) Allow(_ context.Context, key string) (Decision, error) {
	now := fw.now()

	fw.mu.Lock()
	defer fw.mu.Unlock()

	e, ok := fw.entries[key]
	if !ok || now.After(e.resetTime) {
		e = &windowEntry{count: 1, resetTime: now.Add(fw.window)}
		fw.entries[key] = e
		return Decision{Allowed: true, Remaining: fw.limit - 1, ResetTime: e.resetTime}, nil
	}

	if e.count >= fw.limit {
		return Decision{Allowed: false, Remaining: 0, ResetTime: e.resetTime}, nil
	}

	e.count++
	return Decision{Allowed: true, Remaining: fw.limit - e.count, ResetTime: e.resetTime}, nil
}

// sweepLoop periodically removes expired windows so the map does not grow
// without bound on long-running processes.
func (fw *FixedWindow) sweepLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		fw.sweep(fw.now())
	}
}

func (fw *FixedWindow) sweep(now time.Time) {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	for key, e := range fw.entries {
		if now.After(e.resetTime) {
			delete(fw.entries, key)
		}
	}
}
