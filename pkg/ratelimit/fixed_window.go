package ratelimit

import (
	"context"
	"time"
)

// FixedWindow implements a fixed-window rate limiter: a per-key counter
// accumulates attempts for the duration of the window, then resets.
// Cheaper than a sliding window (one counter per key instead of a
// timestamp list) at the cost of boundary bursts, which is an acceptable
// trade-off for form-abuse throttling.
type FixedWindow struct {
	store  Store
	limit  int
	window time.Duration
}

// NewFixedWindow creates a new fixed-window rate limiter.
func NewFixedWindow(store Store, limit int, window time.Duration) (*FixedWindow, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}
	if window <= 0 {
		return nil, ErrInvalidWindow
	}

	return &FixedWindow{
		store:  store,
		limit:  limit,
		window: window,
	}, nil
}

// Allow checks if a request is allowed for the given key, recording the
// attempt when it is. Once the window is exhausted the counter is not
// incremented further, so denied attempts do not extend the lockout.
func (fw *FixedWindow) Allow(ctx context.Context, key string) (*Result, error) {
	if key == "" {
		return nil, ErrKeyRequired
	}

	allowed, remaining, resetAt, err := fw.store.Take(ctx, key, fw.limit, fw.window)
	if err != nil {
		return nil, err
	}

	return &Result{
		Allowed:   allowed,
		Limit:     fw.limit,
		Remaining: remaining,
		ResetAt:   resetAt,
	}, nil
}

// Status returns the current rate limit status without recording an attempt.
func (fw *FixedWindow) Status(ctx context.Context, key string) (*Result, error) {
	if key == "" {
		return nil, ErrKeyRequired
	}

	count, resetAt, err := fw.store.Peek(ctx, key)
	if err != nil {
		return nil, err
	}

	if resetAt.IsZero() {
		resetAt = time.Now().Add(fw.window)
	}

	remaining := max(0, fw.limit-count)
	return &Result{
		Allowed:   remaining > 0,
		Limit:     fw.limit,
		Remaining: remaining,
		ResetAt:   resetAt,
	}, nil
}

// Reset resets the rate limit for the given key.
func (fw *FixedWindow) Reset(ctx context.Context, key string) error {
	if key == "" {
		return ErrKeyRequired
	}

	return fw.store.Delete(ctx, key)
}
