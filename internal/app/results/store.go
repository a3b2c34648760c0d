package results

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

const (
	// DefaultTTL is how long a relay callback payload stays retrievable.
	// Long enough for a mobile browser to come back from the prover app
	// and reload the page.
	DefaultTTL = 5 * time.Minute

	// DefaultMaxEntries bounds the in-memory store under sustained
	// one-way callback traffic. Beyond it the entry closest to expiry is
	// evicted.
	DefaultMaxEntries = 10000
)

// Store stages the last-known callback payload per relay request id.
// Payloads are opaque: whatever the relay sent is returned verbatim.
type Store interface {
	Set(ctx context.Context, requestID string, payload json.RawMessage) error
	Get(ctx context.Context, requestID string) (json.RawMessage, bool, error)
}

type entry struct {
	payload   json.RawMessage
	expiresAt time.Time
}

// InMemoryStore is fine for a single-instance demo; see RedisStore for
// horizontally scaled deployments.
type InMemoryStore struct {
	mu         sync.Mutex
	entries    map[string]entry
	ttl        time.Duration
	maxEntries int
	now        func() time.Time
}

func NewInMemoryStore(opts ...func(*InMemoryStore)) *InMemoryStore {
	s := &InMemoryStore{
		entries:    make(map[string]entry),
		ttl:        DefaultTTL,
		maxEntries: DefaultMaxEntries,
		now:        time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func WithTTL(ttl time.Duration) func(*InMemoryStore) {
	return func(s *InMemoryStore) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

func WithMaxEntries(n int) func(*InMemoryStore) {
	return func(s *InMemoryStore) {
		if n > 0 {
			s.maxEntries = n
		}
	}
}

// Set overwrites any previous payload for requestID (last-write-wins) and
// opportunistically sweeps every expired entry while it holds the lock.
func (s *InMemoryStore) Set(ctx context.Context, requestID string, payload json.RawMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.sweepLocked(now)

	if _, exists := s.entries[requestID]; !exists && len(s.entries) >= s.maxEntries {
		s.evictOldestLocked()
	}

	s.entries[requestID] = entry{
		payload:   payload,
		expiresAt: now.Add(s.ttl),
	}
	return nil
}

// Get returns the stored payload when present and fresh. An expired entry
// is deleted on the spot and reported as absent.
func (s *InMemoryStore) Get(ctx context.Context, requestID string) (json.RawMessage, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[requestID]
	if !ok {
		return nil, false, nil
	}
	if !s.now().Before(e.expiresAt) {
		delete(s.entries, requestID)
		return nil, false, nil
	}
	return e.payload, true, nil
}

// Sweep removes every expired entry and reports how many were dropped.
// The background sweep worker calls this on a timer.
func (s *InMemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sweepLocked(s.now())
}

func (s *InMemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *InMemoryStore) sweepLocked(now time.Time) int {
	removed := 0
	for id, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, id)
			removed++
		}
	}
	return removed
}

func (s *InMemoryStore) evictOldestLocked() {
	var oldestID string
	var oldestAt time.Time
	for id, e := range s.entries {
		if oldestID == "" || e.expiresAt.Before(oldestAt) {
			oldestID = id
			oldestAt = e.expiresAt
		}
	}
	if oldestID != "" {
		delete(s.entries, oldestID)
	}
}
