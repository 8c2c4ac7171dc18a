package domain

import (
	"testing"
	"time"
)

func testEntries() []Entry {
	date := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	return []Entry{
		{ID: "1", Title: "Rent Payment", Category: CategoryBillsUtilities, Date: date},
		{ID: "2", Title: "Groceries", Category: CategoryFoodDining, Date: date},
		{ID: "3", Title: "Car Rental", Category: CategoryTravel, Date: date},
	}
}

func TestFilter_SubstringCaseInsensitive(t *testing.T) {
	f := Filter{Term: "rent"}

	got := f.Apply(testEntries())

	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	if got[0].Title != "Rent Payment" || got[1].Title != "Car Rental" {
		t.Errorf("unexpected matches: %q, %q", got[0].Title, got[1].Title)
	}
}

func TestFilter_MatchesNotes(t *testing.T) {
	entries := []Entry{
		{ID: "1", Title: "Payment", Notes: "monthly RENT for flat"},
		{ID: "2", Title: "Payment", Notes: "electricity"},
	}

	got := Filter{Term: "rent"}.Apply(entries)

	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("expected notes match on entry 1, got %+v", got)
	}
}

func TestFilter_EmptyTermMatchesAll(t *testing.T) {
	entries := testEntries()

	for _, f := range []Filter{{}, {Term: "   "}, {Category: CategoryAll}, {Term: "", Category: "all"}} {
		got := f.Apply(entries)
		if len(got) != len(entries) {
			t.Errorf("filter %+v: expected %d entries, got %d", f, len(entries), len(got))
		}
	}
}

func TestFilter_CategoryAndTermCombineWithAND(t *testing.T) {
	f := Filter{Term: "rent", Category: string(CategoryTravel)}

	got := f.Apply(testEntries())

	if len(got) != 1 || got[0].Title != "Car Rental" {
		t.Fatalf("expected only Car Rental, got %+v", got)
	}
}

func TestFilter_Idempotent(t *testing.T) {
	f := Filter{Term: "rent", Category: CategoryAll}
	entries := testEntries()

	once := f.Apply(entries)
	twice := f.Apply(once)

	if len(once) != len(twice) {
		t.Fatalf("filter not idempotent: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Fatalf("filter not idempotent at %d: %s vs %s", i, once[i].ID, twice[i].ID)
		}
	}
}

func TestFilter_PreservesOrder(t *testing.T) {
	entries := testEntries()

	got := Filter{Category: CategoryAll}.Apply(entries)

	for i := range entries {
		if got[i].ID != entries[i].ID {
			t.Fatalf("order changed at %d", i)
		}
	}
}
