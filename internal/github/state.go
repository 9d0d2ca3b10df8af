package github

import (
	"crypto/rand"
	"encoding/base64"
	"sync"
	"time"
)

// StateStore issues and consumes single-use CSRF state tokens for the
// OAuth callback. Tokens expire after the configured TTL; a background
// sweep reclaims tokens that were issued but never consumed (the user
// abandoned the authorization page).
type StateStore struct {
	mu     sync.Mutex
	states map[string]time.Time

	ttl       time.Duration
	stopCh    chan struct{}
	closeOnce sync.Once
}

func NewStateStore(ttl time.Duration) *StateStore {
	s := &StateStore{
		states: make(map[string]time.Time),
		ttl:    ttl,
		stopCh: make(chan struct{}),
	}
	go s.sweepLoop()
	return s
}

// Issue generates a new random state token and records it.
func (s *StateStore) Issue() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	state := base64.URLEncoding.EncodeToString(b)

	s.mu.Lock()
	s.states[state] = time.Now().Add(s.ttl)
	s.mu.Unlock()

	return state, nil
}

// Consume validates and removes a state token. A token can be consumed
// exactly once; expired or unknown tokens return ErrInvalidState.
func (s *StateStore) Consume(state string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt, ok := s.states[state]
	if !ok {
		return ErrInvalidState
	}
	delete(s.states, state)

	if time.Now().After(expiresAt) {
		return ErrInvalidState
	}
	return nil
}

// Len reports the number of outstanding tokens.
func (s *StateStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.states)
}

func (s *StateStore) sweepLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep()
		case <-s.stopCh:
			return
		}
	}
}

func (s *StateStore) sweep() {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for state, expiresAt := range s.states {
		if now.After(expiresAt) {
			delete(s.states, state)
		}
	}
}

// Close stops the sweep goroutine. Safe to call multiple times.
func (s *StateStore) Close() {
	s.closeOnce.Do(func() { close(s.stopCh) })
}
