package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryStore implements an in-memory fixed-window store. All counter
// mutations happen under a single mutex, making increment-and-compare
// atomic across concurrent requests for the same key.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*entry

	cleanupInterval time.Duration
	stopCleanup     chan struct{}
	cleanupOnce     sync.Once
}

type entry struct {
	count   int
	resetAt time.Time
}

// MemoryStoreOption configures a MemoryStore.
type MemoryStoreOption func(*MemoryStore)

// WithCleanupInterval sets the sweep interval for expired entries.
func WithCleanupInterval(interval time.Duration) MemoryStoreOption {
	return func(s *MemoryStore) {
		if interval > 0 {
			s.cleanupInterval = interval
		}
	}
}

// NewMemoryStore creates a new in-memory store with a background sweep
// that bounds memory by deleting entries whose window has elapsed.
func NewMemoryStore(opts ...MemoryStoreOption) *MemoryStore {
	s := &MemoryStore{
		entries:         make(map[string]*entry),
		cleanupInterval: 1 * time.Minute,
		stopCleanup:     make(chan struct{}),
	}

	for _, opt := range opts {
		opt(s)
	}

	go s.cleanupLoop()

	return s
}

// Take records an attempt for the key unless the active window is exhausted.
func (s *MemoryStore) Take(ctx context.Context, key string, limit int, window time.Duration) (bool, int, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	e, exists := s.entries[key]

	// Fresh key, or the previous window elapsed: full reset, not accumulation.
	if !exists || !now.Before(e.resetAt) {
		e = &entry{count: 1, resetAt: now.Add(window)}
		s.entries[key] = e
		return true, limit - 1, e.resetAt, nil
	}

	if e.count >= limit {
		// Exhausted: do not increment past the limit.
		return false, 0, e.resetAt, nil
	}

	e.count++
	return true, limit - e.count, e.resetAt, nil
}

// Peek returns the current counter without mutating it.
func (s *MemoryStore) Peek(ctx context.Context, key string) (int, time.Time, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, exists := s.entries[key]
	if !exists || !time.Now().Before(e.resetAt) {
		return 0, time.Time{}, nil
	}

	return e.count, e.resetAt, nil
}

// Delete removes the given key from the store.
func (s *MemoryStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)
	return nil
}

// Cleanup removes all entries whose window has fully elapsed. It is a
// garbage-collection pass with no effect on active windows, safe to call
// at any time in addition to the background sweep.
func (s *MemoryStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for key, e := range s.entries {
		if !now.Before(e.resetAt) {
			delete(s.entries, key)
		}
	}
}

// Len reports the number of tracked keys, expired entries included until
// the next sweep.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *MemoryStore) cleanupLoop() {
	ticker := time.NewTicker(s.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.Cleanup()
		case <-s.stopCleanup:
			return
		}
	}
}

// Close stops the cleanup goroutine.
func (s *MemoryStore) Close() error {
	s.cleanupOnce.Do(func() {
		close(s.stopCleanup)
	})
	return nil
}
