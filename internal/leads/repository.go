package leads

import (
	"context"
	"sync"
)

// Repository defines the interface for lead storage. Insert is the only
// operation the intake path needs; records are written once and never
// read back, updated or deleted by this service.
type Repository interface {
	Insert(ctx context.Context, lead *Lead) error
}

// InMemoryRepository keeps leads in a process-local map. Used in dev mode
// and tests.
type InMemoryRepository struct {
	mu    sync.RWMutex
	leads map[string]*Lead
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		leads: make(map[string]*Lead),
	}
}

// Insert stores the lead keyed by its id.
func (r *InMemoryRepository) Insert(ctx context.Context, lead *Lead) error {
	r.mu.Lock()
	r.leads[lead.ID] = lead
	r.mu.Unlock()
	return nil
}

// Get returns the lead with the given id, or nil. Test helper; the intake
// path never reads.
func (r *InMemoryRepository) Get(id string) *Lead {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.leads[id]
}

var _ Repository = (*InMemoryRepository)(nil)
