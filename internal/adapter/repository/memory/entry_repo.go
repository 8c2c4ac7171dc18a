// Package memory holds an ephemeral entry store for demos and tests.
package memory

import (
	"context"
	"sync"

	"github.com/finbook/finbook/internal/domain"
)

// EntryRepository implements usecase.EntryRepository in process memory.
// Everything is lost on restart.
type EntryRepository struct {
	mu      sync.RWMutex
	entries map[string][]domain.Entry // keyed by owner id
}

// NewEntryRepository creates an empty in-memory repository.
func NewEntryRepository() *EntryRepository {
	return &EntryRepository{
		entries: make(map[string][]domain.Entry),
	}
}

// Load fetches all entries for an owner in display order.
func (r *EntryRepository) Load(ctx context.Context, ownerID string) ([]domain.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Entry, len(r.entries[ownerID]))
	copy(out, r.entries[ownerID])
	domain.SortEntries(out)

	return out, nil
}

// Append persists one new entry.
func (r *EntryRepository) Append(ctx context.Context, entry *domain.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[entry.OwnerID] = append(r.entries[entry.OwnerID], *entry)
	return nil
}

// Remove deletes one entry scoped to its owner. A missing id reports
// domain.ErrEntryNotFound.
func (r *EntryRepository) Remove(ctx context.Context, ownerID, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.entries[ownerID]
	for i, e := range list {
		if e.ID == id {
			r.entries[ownerID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}

	return domain.ErrEntryNotFound
}
