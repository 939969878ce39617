// Package ratelimit implements sliding-window request limiting keyed by caller.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter decides whether one more request under key fits in the last window.
// A request that is allowed is recorded; a denied request is not.
type Limiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}

// MemoryLimiter keeps a log of request timestamps per key in process memory.
// Counts are local to one replica and are lost on restart.
type MemoryLimiter struct {
	mu      sync.Mutex
	buckets map[string][]time.Time
	now     func() time.Time
}

// NewMemoryLimiter creates an empty MemoryLimiter.
func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{
		buckets: make(map[string][]time.Time),
		now:     time.Now,
	}
}

var _ Limiter = (*MemoryLimiter)(nil)

// Allow implements Limiter. It never returns an error.
func (l *MemoryLimiter) Allow(_ context.Context, key string, limit int, window time.Duration) (bool, error) {
	now := l.now()
	cutoff := now.Add(-window)

	l.mu.Lock()
	defer l.mu.Unlock()

	bucket := l.buckets[key]
	expired := 0
	for expired < len(bucket) && bucket[expired].Before(cutoff) {
		expired++
	}
	bucket = bucket[expired:]

	if len(bucket) >= limit {
		l.buckets[key] = bucket
		return false, nil
	}

	l.buckets[key] = append(bucket, now)
	return true, nil
}

// Reset drops every recorded request.
func (l *MemoryLimiter) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.buckets = make(map[string][]time.Time)
}
