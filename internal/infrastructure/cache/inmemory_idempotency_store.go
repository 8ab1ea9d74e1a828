package cache

import (
	"context"
	"sync"
	"time"

	"github.com/tourbook/backend/internal/domain/shared"
)

const sweepInterval = 5 * time.Minute

// InMemoryIdempotencyStore is a map-backed IdempotencyStore for single-node
// deployments and tests. A background sweeper evicts expired marks; until the
// sweep runs, expired marks are filtered on read.
type InMemoryIdempotencyStore struct {
	mu        sync.RWMutex
	marks     map[string]time.Time
	done      chan struct{}
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewInMemoryIdempotencyStore creates the store and starts its sweeper
func NewInMemoryIdempotencyStore() *InMemoryIdempotencyStore {
	s := &InMemoryIdempotencyStore{
		marks: make(map[string]time.Time),
		done:  make(chan struct{}),
	}
	s.wg.Add(1)
	go s.sweep()
	return s
}

// MarkProcessed records an event ID for the given TTL. It reports true when
// the ID was not yet marked, false when a live mark already exists.
func (s *InMemoryIdempotencyStore) MarkProcessed(ctx context.Context, eventID string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if deadline, ok := s.marks[eventID]; ok && time.Now().Before(deadline) {
		return false, nil
	}
	s.marks[eventID] = time.Now().Add(ttl)
	return true, nil
}

// IsProcessed reports whether a live mark exists for the event ID
func (s *InMemoryIdempotencyStore) IsProcessed(ctx context.Context, eventID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	deadline, ok := s.marks[eventID]
	return ok && time.Now().Before(deadline), nil
}

// Close stops the sweeper. Safe to call more than once.
func (s *InMemoryIdempotencyStore) Close() error {
	s.closeOnce.Do(func() {
		close(s.done)
		s.wg.Wait()
	})
	return nil
}

func (s *InMemoryIdempotencyStore) sweep() {
	defer s.wg.Done()

	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			s.evictExpired()
		}
	}
}

func (s *InMemoryIdempotencyStore) evictExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for id, deadline := range s.marks {
		if now.After(deadline) {
			delete(s.marks, id)
		}
	}
}

var _ shared.IdempotencyStore = (*InMemoryIdempotencyStore)(nil)
