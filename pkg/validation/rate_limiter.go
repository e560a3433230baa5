package validation

import (
	"sync"
	"time"
)

// RateLimiter implements a token bucket per key. The audio player uses it to
// stop a burst of identical effects from stacking into noise.
type RateLimiter struct {
	maxRequests int
	window      time.Duration
	buckets     map[string]*bucket
	mu          sync.RWMutex
	now         func() time.Time
	cleanupTick *time.Ticker
	done        chan struct{}
	closeOnce   sync.Once
}

// bucket tracks rate limiting state for a single key
type bucket struct {
	tokens     int
	lastRefill time.Time
	lastUse    time.Time
	mu         sync.Mutex
}

// NewRateLimiter creates a limiter allowing maxRequests per window per key
func NewRateLimiter(maxRequests int, window time.Duration) *RateLimiter {
	return newRateLimiter(maxRequests, window, time.Now)
}

func newRateLimiter(maxRequests int, window time.Duration, now func() time.Time) *RateLimiter {
	rl := &RateLimiter{
		maxRequests: maxRequests,
		window:      window,
		buckets:     make(map[string]*bucket),
		now:         now,
		done:        make(chan struct{}),
	}

	// Start cleanup goroutine to remove idle keys
	rl.cleanupTick = time.NewTicker(window)
	go rl.cleanup()

	return rl
}

// Allow reports whether a request for key may proceed, consuming a token
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.RLock()
	b, exists := rl.buckets[key]
	rl.mu.RUnlock()

	if !exists {
		rl.mu.Lock()
		if b, exists = rl.buckets[key]; !exists {
			now := rl.now()
			b = &bucket{tokens: rl.maxRequests, lastRefill: now, lastUse: now}
			rl.buckets[key] = b
		}
		rl.mu.Unlock()
	}

	return rl.consume(b)
}

// consume refills the bucket for the elapsed time and takes a token
func (rl *RateLimiter) consume(b *bucket) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := rl.now()
	b.lastUse = now

	elapsed := now.Sub(b.lastRefill)
	if elapsed > 0 && b.tokens < rl.maxRequests {
		refill := int(float64(rl.maxRequests) * float64(elapsed) / float64(rl.window))
		if refill > 0 {
			b.tokens = min(b.tokens+refill, rl.maxRequests)
			b.lastRefill = now
		}
	}

	if b.tokens > 0 {
		b.tokens--
		return true
	}
	return false
}

// cleanup removes idle keys once per window
func (rl *RateLimiter) cleanup() {
	for {
		select {
		case <-rl.cleanupTick.C:
			rl.removeIdle()
		case <-rl.done:
			return
		}
	}
}

// removeIdle drops keys unused for two windows
func (rl *RateLimiter) removeIdle() {
	cutoff := rl.now().Add(-2 * rl.window)

	rl.mu.Lock()
	for key, b := range rl.buckets {
		b.mu.Lock()
		if b.lastUse.Before(cutoff) {
			delete(rl.buckets, key)
		}
		b.mu.Unlock()
	}
	rl.mu.Unlock()
}

// Close stops the cleanup goroutine. It is safe to call more than once.
func (rl *RateLimiter) Close() {
	rl.closeOnce.Do(func() {
		close(rl.done)
		rl.cleanupTick.Stop()
	})
}
