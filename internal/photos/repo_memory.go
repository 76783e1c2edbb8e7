package photos

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]PhotoRecord
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]PhotoRecord)}
}

// Put stores the record keyed by its id.
func (r *MemoryRepo) Put(ctx context.Context, record PhotoRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[record.ID] = record
	return nil
}

// Get returns the record for the given id.
func (r *MemoryRepo) Get(ctx context.Context, id string) (PhotoRecord, error) {
	if err := ctx.Err(); err != nil {
		return PhotoRecord{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.data[id]
	if !ok {
		return PhotoRecord{}, ErrNotFound
	}
	return record, nil
}

// Len reports how many records are stored; tests use it to assert that no
// writes happened.
func (r *MemoryRepo) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data)
}

var _ Repo = (*MemoryRepo)(nil)
