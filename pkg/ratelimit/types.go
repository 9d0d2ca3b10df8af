package ratelimit

import (
	"context"
	"time"
)

// Result contains the result of a rate limit check.
type Result struct {
	// Allowed indicates whether the request is allowed.
	Allowed bool

	// Limit is the maximum number of attempts allowed in the window.
	Limit int

	// Remaining is the number of attempts remaining in the current window.
	Remaining int

	// ResetAt is the time when the rate limit window resets.
	ResetAt time.Time
}

// RetryAfter returns how long to wait before the next request is allowed.
// Returns 0 if the current request was allowed.
func (r *Result) RetryAfter() time.Duration {
	if r.Allowed {
		return 0
	}
	return time.Until(r.ResetAt)
}

// Limiter defines the interface for rate limiting implementations.
type Limiter interface {
	// Allow checks if a request is allowed for the given key and, if so,
	// records the attempt.
	Allow(ctx context.Context, key string) (*Result, error)

	// Status returns the current rate limit status for the given key
	// without recording an attempt.
	Status(ctx context.Context, key string) (*Result, error)

	// Reset clears the rate limit state for the given key.
	Reset(ctx context.Context, key string) error
}

// Store defines the interface for rate limit storage backends.
type Store interface {
	// Take atomically records an attempt for the key unless the window's
	// counter has already reached limit. The read-increment-write sequence
	// is a single critical section: two concurrent calls for the same key
	// can never both observe the same pre-increment count.
	// Returns whether the attempt was allowed, the attempts remaining in
	// the window, and the window's reset time.
	Take(ctx context.Context, key string, limit int, window time.Duration) (allowed bool, remaining int, resetAt time.Time, err error)

	// Peek returns the current counter and reset time for the key without
	// mutating it. A missing or expired entry reports a zero count.
	Peek(ctx context.Context, key string) (count int, resetAt time.Time, err error)

	// Delete removes the given key from the store.
	Delete(ctx context.Context, key string) error
}
