// Package ratelimit limits inbound requests per client key.
// The memory backend keeps one token bucket per key in process;
// the redis backend shares a fixed-window counter between instances.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Limiter decides whether one more request for key may pass.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// idleTTL is how long an untouched bucket is kept before cleanup drops it.
const idleTTL = 10 * time.Minute

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryLimiter manages one token bucket per key.
type MemoryLimiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	limit   rate.Limit
	burst   int

	done     chan struct{}
	stopOnce sync.Once
}

// NewMemoryLimiter creates a keyed limiter allowing rps requests per second
// with bursts of up to burst requests.
func NewMemoryLimiter(rps float64, burst int) *MemoryLimiter {
	l := &MemoryLimiter{
		buckets: make(map[string]*bucket),
		limit:   rate.Limit(rps),
		burst:   burst,
		done:    make(chan struct{}),
	}

	go l.cleanup()

	return l
}

// Allow never blocks and never fails.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.mu.Lock()
	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.buckets[key] = b
	}
	b.lastSeen = time.Now()
	l.mu.Unlock()

	return b.limiter.Allow(), nil
}

// Stop shuts down the cleanup goroutine.
func (l *MemoryLimiter) Stop() {
	l.stopOnce.Do(func() {
		close(l.done)
	})
}

func (l *MemoryLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-l.done:
			return
		case now := <-ticker.C:
			l.mu.Lock()
			for key, b := range l.buckets {
				if now.Sub(b.lastSeen) > idleTTL {
					delete(l.buckets, key)
				}
			}
			l.mu.Unlock()
		}
	}
}
