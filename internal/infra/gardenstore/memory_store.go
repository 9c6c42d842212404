package gardenstore

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ecolife/ecolife-api/internal/domain/garden"
)

type entry struct {
	plantIDs  []int
	expiresAt time.Time
}

// MemoryStore keeps gardens in process memory until their session expires.
type MemoryStore struct {
	mu      sync.Mutex
	gardens map[uuid.UUID]*entry
	now     func() time.Time
}

// NewMemoryStore constructs an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		gardens: make(map[uuid.UUID]*entry),
		now:     time.Now,
	}
}

// Create registers an empty garden. A non-positive ttl never expires.
func (s *MemoryStore) Create(_ context.Context, sessionID uuid.UUID, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.sweepLocked(now)
	exp := time.Time{}
	if ttl > 0 {
		exp = now.Add(ttl)
	}
	s.gardens[sessionID] = &entry{plantIDs: []int{}, expiresAt: exp}
	return nil
}

// PlantIDs returns a copy of the selection in insertion order.
func (s *MemoryStore) PlantIDs(_ context.Context, sessionID uuid.UUID) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, err := s.lookupLocked(sessionID)
	if err != nil {
		return nil, err
	}
	return cloneIDs(e.plantIDs), nil
}

// Update applies fn under the store lock. fn receives a copy.
func (s *MemoryStore) Update(_ context.Context, sessionID uuid.UUID, fn func([]int) ([]int, error)) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, err := s.lookupLocked(sessionID)
	if err != nil {
		return nil, err
	}
	next, err := fn(cloneIDs(e.plantIDs))
	if err != nil {
		return nil, err
	}
	e.plantIDs = next
	return cloneIDs(next), nil
}

func (s *MemoryStore) lookupLocked(sessionID uuid.UUID) (*entry, error) {
	e, ok := s.gardens[sessionID]
	if !ok {
		return nil, garden.ErrSessionNotFound
	}
	if hasExpired(e.expiresAt, s.now()) {
		delete(s.gardens, sessionID)
		return nil, garden.ErrSessionNotFound
	}
	return e, nil
}

func (s *MemoryStore) sweepLocked(now time.Time) {
	for id, e := range s.gardens {
		if hasExpired(e.expiresAt, now) {
			delete(s.gardens, id)
		}
	}
}

func hasExpired(ts, now time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return ts.Before(now)
}

func cloneIDs(ids []int) []int {
	out := make([]int, len(ids))
	copy(out, ids)
	return out
}

var _ garden.Store = (*MemoryStore)(nil)
