package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finbook/finbook/internal/domain"
)

func TestEntryRepository_LoadSortsAndCopies(t *testing.T) {
	repo := NewEntryRepository()
	ctx := context.Background()

	base := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)
	for _, e := range []*domain.Entry{
		{ID: "e-old", OwnerID: "o", Date: base.AddDate(0, 0, -2), CreatedAt: base},
		{ID: "e-new", OwnerID: "o", Date: base, CreatedAt: base},
	} {
		if err := repo.Append(ctx, e); err != nil {
			t.Fatalf("append failed: %v", err)
		}
	}

	entries, err := repo.Load(ctx, "o")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if entries[0].ID != "e-new" || entries[1].ID != "e-old" {
		t.Fatalf("unexpected order: %+v", entries)
	}

	// Mutating the returned slice must not leak into the store.
	entries[0].Title = "tampered"
	again, _ := repo.Load(ctx, "o")
	if again[0].Title == "tampered" {
		t.Fatal("load must return a copy")
	}
}

func TestEntryRepository_RemoveMissingReportsNotFound(t *testing.T) {
	repo := NewEntryRepository()

	err := repo.Remove(context.Background(), "o", "nope")
	if !errors.Is(err, domain.ErrEntryNotFound) {
		t.Fatalf("expected ErrEntryNotFound, got %v", err)
	}
}

func TestEntryRepository_ConcurrentAppends(t *testing.T) {
	repo := NewEntryRepository()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			repo.Append(ctx, &domain.Entry{
				ID:      string(rune('a' + n%26)),
				OwnerID: "o",
				Date:    time.Now(),
				Profit:  decimal.NewFromInt(1),
			})
		}(i)
	}
	wg.Wait()

	entries, err := repo.Load(ctx, "o")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(entries) != 50 {
		t.Fatalf("expected 50 entries, got %d", len(entries))
	}
}
