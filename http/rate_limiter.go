package http

import (
	"sync"
	"time"
)

const (
	staleBucketAge  = 1 * time.Hour
	janitorInterval = 30 * time.Minute
)

type bucket struct {
	remaining int
	refilled  time.Time
}

// RateLimiter throttles the optimize endpoint per client IP: each client
// gets a bucket of capacity tokens that refills in full every window.
// The upstream AI call is the one expensive operation in the service, so
// only that route is limited.
type RateLimiter struct {
	mu      sync.Mutex
	cap     int
	window  time.Duration
	buckets map[string]*bucket
	done    chan struct{}
}

func NewRateLimiter(capacity int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		cap:     capacity,
		window:  window,
		buckets: make(map[string]*bucket),
		done:    make(chan struct{}),
	}
	go rl.janitor()
	return rl
}

func (rl *RateLimiter) janitor() {
	ticker := time.NewTicker(janitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.dropStale()
		case <-rl.done:
			return
		}
	}
}

func (rl *RateLimiter) dropStale() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	for ip, b := range rl.buckets {
		if now.Sub(b.refilled) > staleBucketAge {
			delete(rl.buckets, ip)
		}
	}
}

func (rl *RateLimiter) Stop() {
	close(rl.done)
}

// Allow reports whether the client may make another request, consuming a
// token when it may.
func (rl *RateLimiter) Allow(ip string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	b, ok := rl.buckets[ip]
	if !ok {
		rl.buckets[ip] = &bucket{remaining: rl.cap - 1, refilled: now}
		return true
	}

	if now.Sub(b.refilled) >= rl.window {
		b.remaining = rl.cap
		b.refilled = now
	}

	if b.remaining <= 0 {
		return false
	}
	b.remaining--
	return true
}
