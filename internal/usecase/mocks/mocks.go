package mocks

import (
	"context"
	"fmt"
	"sync"

	"github.com/finbook/finbook/internal/domain"
)

// FakeEntryRepository is a stateful in-memory implementation of
// usecase.EntryRepository for tests. Behavior can be overridden per call via
// the Func fields.
type FakeEntryRepository struct {
	mu      sync.RWMutex
	entries map[string][]domain.Entry // keyed by owner id

	LoadFunc   func(ctx context.Context, ownerID string) ([]domain.Entry, error)
	AppendFunc func(ctx context.Context, entry *domain.Entry) error
	RemoveFunc func(ctx context.Context, ownerID, id string) error
}

// NewFakeEntryRepository creates an empty fake repository.
func NewFakeEntryRepository() *FakeEntryRepository {
	return &FakeEntryRepository{
		entries: make(map[string][]domain.Entry),
	}
}

// Seed inserts entries directly, bypassing any overrides.
func (f *FakeEntryRepository) Seed(entries ...domain.Entry) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, e := range entries {
		f.entries[e.OwnerID] = append(f.entries[e.OwnerID], e)
	}
}

func (f *FakeEntryRepository) Load(ctx context.Context, ownerID string) ([]domain.Entry, error) {
	if f.LoadFunc != nil {
		return f.LoadFunc(ctx, ownerID)
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]domain.Entry, len(f.entries[ownerID]))
	copy(out, f.entries[ownerID])
	return out, nil
}

func (f *FakeEntryRepository) Append(ctx context.Context, entry *domain.Entry) error {
	if f.AppendFunc != nil {
		return f.AppendFunc(ctx, entry)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[entry.OwnerID] = append(f.entries[entry.OwnerID], *entry)
	return nil
}

func (f *FakeEntryRepository) Remove(ctx context.Context, ownerID, id string) error {
	if f.RemoveFunc != nil {
		return f.RemoveFunc(ctx, ownerID, id)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	list := f.entries[ownerID]
	for i, e := range list {
		if e.ID == id {
			f.entries[ownerID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return domain.ErrEntryNotFound
}

// Count returns the number of stored entries for an owner.
func (f *FakeEntryRepository) Count(ownerID string) int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.entries[ownerID])
}

// SequentialIDGenerator hands out predictable ids for tests.
type SequentialIDGenerator struct {
	mu   sync.Mutex
	next int
}

func (g *SequentialIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return fmt.Sprintf("id-%d", g.next)
}
