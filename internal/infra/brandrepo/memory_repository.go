package brandrepo

import (
	"context"
	"sync"

	"github.com/ecolife/ecolife-api/internal/domain/brand"
)

const defaultMemoryCapacity = 256

// MemoryRepository keeps the latest brand lookups in a bounded ring.
type MemoryRepository struct {
	mu    sync.RWMutex
	ring  []brand.Lookup
	next  int
	count int
}

// NewMemoryRepository constructs a repository holding at most capacity lookups.
func NewMemoryRepository(capacity int) *MemoryRepository {
	if capacity <= 0 {
		capacity = defaultMemoryCapacity
	}
	return &MemoryRepository{ring: make([]brand.Lookup, capacity)}
}

// Append implements brand.LookupRepository.
func (r *MemoryRepository) Append(_ context.Context, lookup brand.Lookup) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ring[r.next] = lookup
	r.next = (r.next + 1) % len(r.ring)
	if r.count < len(r.ring) {
		r.count++
	}
	return nil
}

// Recent implements brand.LookupRepository; newest first.
func (r *MemoryRepository) Recent(_ context.Context, limit int) ([]brand.Lookup, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if limit <= 0 || limit > r.count {
		limit = r.count
	}
	out := make([]brand.Lookup, 0, limit)
	for i := 1; i <= limit; i++ {
		idx := (r.next - i + len(r.ring)) % len(r.ring)
		out = append(out, r.ring[idx])
	}
	return out, nil
}

var _ brand.LookupRepository = (*MemoryRepository)(nil)
