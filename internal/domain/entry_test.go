package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNewEntry_CoercesAmounts(t *testing.T) {
	tests := []struct {
		name       string
		profit     string
		loss       string
		wantProfit string
		wantLoss   string
	}{
		{
			name:       "empty profit with valid loss",
			profit:     "",
			loss:       "45.5",
			wantProfit: "0",
			wantLoss:   "45.5",
		},
		{
			name:       "negative values clamp to zero",
			profit:     "-100",
			loss:       "-0.01",
			wantProfit: "0",
			wantLoss:   "0",
		},
		{
			name:       "garbage values clamp to zero",
			profit:     "abc",
			loss:       "12,5",
			wantProfit: "0",
			wantLoss:   "0",
		},
		{
			name:       "both valid",
			profit:     "1000",
			loss:       "250.50",
			wantProfit: "1000",
			wantLoss:   "250.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := NewEntry(NewEntryInput{
				OwnerID: "owner-1",
				Title:   "Groceries",
				Date:    time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
				Profit:  tt.profit,
				Loss:    tt.loss,
			}, time.Now())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if e.Profit.String() != tt.wantProfit {
				t.Errorf("profit = %s, want %s", e.Profit, tt.wantProfit)
			}
			if e.Loss.String() != tt.wantLoss {
				t.Errorf("loss = %s, want %s", e.Loss, tt.wantLoss)
			}
			if e.Profit.IsNegative() || e.Loss.IsNegative() {
				t.Error("amounts must never be negative after ingestion")
			}
		})
	}
}

func TestNewEntry_RequiredFields(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	if _, err := NewEntry(NewEntryInput{OwnerID: "o", Date: date}, time.Now()); err != ErrMissingTitle {
		t.Errorf("expected ErrMissingTitle, got %v", err)
	}

	if _, err := NewEntry(NewEntryInput{OwnerID: "o", Title: "Rent"}, time.Now()); err != ErrMissingDate {
		t.Errorf("expected ErrMissingDate, got %v", err)
	}

	if _, err := NewEntry(NewEntryInput{Title: "Rent", Date: date}, time.Now()); err != ErrMissingOwner {
		t.Errorf("expected ErrMissingOwner, got %v", err)
	}
}

func TestNewEntry_DefaultsCategory(t *testing.T) {
	e, err := NewEntry(NewEntryInput{
		OwnerID: "owner-1",
		Title:   "Mystery",
		Date:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if e.Category != CategoryUncategorized {
		t.Errorf("category = %s, want %s", e.Category, CategoryUncategorized)
	}

	e2, err := NewEntry(NewEntryInput{
		OwnerID:  "owner-1",
		Title:    "Lunch",
		Date:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Category: "Food & Dining",
	}, time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if e2.Category != CategoryFoodDining {
		t.Errorf("category = %s, want %s", e2.Category, CategoryFoodDining)
	}
}

func TestNormalizeDate(t *testing.T) {
	in := time.Date(2024, 6, 7, 23, 59, 12, 456, time.UTC)
	got := NormalizeDate(in)
	want := time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC)

	if !got.Equal(want) {
		t.Errorf("NormalizeDate() = %v, want %v", got, want)
	}
}

func TestSortEntries(t *testing.T) {
	base := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	entries := []Entry{
		{ID: "old", Date: base.AddDate(0, 0, -2), CreatedAt: base},
		{ID: "tie-early", Date: base, CreatedAt: base.Add(1 * time.Hour)},
		{ID: "newest", Date: base.AddDate(0, 0, 1), CreatedAt: base},
		{ID: "tie-late", Date: base, CreatedAt: base.Add(2 * time.Hour)},
	}

	SortEntries(entries)

	wantOrder := []string{"newest", "tie-late", "tie-early", "old"}
	for i, want := range wantOrder {
		if entries[i].ID != want {
			t.Fatalf("position %d: got %s, want %s", i, entries[i].ID, want)
		}
	}
}

func TestCoerceAmount_NeverNegative(t *testing.T) {
	for _, raw := range []string{"", "-5", "nan", "1e", "  ", "-0.0001", "999.99"} {
		if CoerceAmount(raw).IsNegative() {
			t.Errorf("CoerceAmount(%q) is negative", raw)
		}
	}

	if got := CoerceAmount("999.99"); !got.Equal(decimal.RequireFromString("999.99")) {
		t.Errorf("CoerceAmount(999.99) = %s", got)
	}
}
