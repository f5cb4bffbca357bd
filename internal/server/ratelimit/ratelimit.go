// Package ratelimit provides per-client request limiting using token buckets.
package ratelimit

import (
	"sync"
	"time"
)

const cleanupInterval = 5 * time.Minute

// tokenBucket refills at a steady rate up to its capacity. Each allowed
// request consumes one token.
type tokenBucket struct {
	mu         sync.Mutex
	capacity   float64
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	lastAccess time.Time
}

func (tb *tokenBucket) allow(now time.Time) (bool, int) {
	tb.mu.Lock()
	defer tb.mu.Unlock()

	elapsed := now.Sub(tb.lastRefill).Seconds()
	tb.tokens = min(tb.capacity, tb.tokens+elapsed*tb.refillRate)
	tb.lastRefill = now
	tb.lastAccess = now

	if tb.tokens >= 1.0 {
		tb.tokens -= 1.0
		return true, int(tb.tokens)
	}
	return false, 0
}

// Info describes the limiter decision for one request.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// Limiter tracks a token bucket per client. A limit of zero or less
// disables limiting entirely.
type Limiter struct {
	mu             sync.Mutex
	buckets        map[string]*tokenBucket
	limitPerMinute int
	stop           chan struct{}
	stopOnce       sync.Once
}

// NewLimiter builds a Limiter allowing limitPerMinute requests per client.
func NewLimiter(limitPerMinute int) *Limiter {
	l := &Limiter{
		buckets:        make(map[string]*tokenBucket),
		limitPerMinute: limitPerMinute,
		stop:           make(chan struct{}),
	}
	if limitPerMinute > 0 {
		go l.cleanupLoop()
	}
	return l
}

// Allow reports whether a request from the given client may proceed.
func (l *Limiter) Allow(clientID string) Info {
	if l.limitPerMinute <= 0 {
		return Info{Allowed: true}
	}

	now := time.Now()
	bucket := l.getBucket(clientID, now)
	allowed, remaining := bucket.allow(now)

	info := Info{
		Allowed:   allowed,
		Limit:     l.limitPerMinute,
		Remaining: remaining,
	}
	if !allowed {
		secondsPerToken := 60.0 / float64(l.limitPerMinute)
		info.RetryAfter = time.Duration(secondsPerToken * float64(time.Second))
	}
	return info
}

// Stop terminates the background cleanup goroutine.
func (l *Limiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}

func (l *Limiter) getBucket(clientID string, now time.Time) *tokenBucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	bucket, ok := l.buckets[clientID]
	if !ok {
		bucket = &tokenBucket{
			capacity:   float64(l.limitPerMinute),
			refillRate: float64(l.limitPerMinute) / 60.0,
			tokens:     float64(l.limitPerMinute),
			lastRefill: now,
			lastAccess: now,
		}
		l.buckets[clientID] = bucket
	}
	return bucket
}

// cleanupLoop drops buckets idle for longer than the cleanup interval so
// the client map does not grow without bound.
func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case now := <-ticker.C:
			l.mu.Lock()
			for clientID, bucket := range l.buckets {
				bucket.mu.Lock()
				idle := now.Sub(bucket.lastAccess)
				bucket.mu.Unlock()
				if idle > cleanupInterval {
					delete(l.buckets, clientID)
				}
			}
			l.mu.Unlock()
		}
	}
}
