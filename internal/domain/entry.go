package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Entry represents a single income or expense record belonging to one owner.
type Entry struct {
	ID        string
	OwnerID   string
	Title     string
	Date      time.Time
	Category  Category
	Notes     string
	Profit    decimal.Decimal
	Loss      decimal.Decimal
	CreatedAt time.Time
}

// NewEntryInput carries the raw form values for a new entry. Profit and Loss
// arrive as strings because the submitting side may send empty or garbage
// values; both are coerced to zero rather than rejected.
type NewEntryInput struct {
	OwnerID  string
	Title    string
	Date     time.Time
	Category string
	Notes    string
	Profit   string
	Loss     string
}

// NewEntry builds a validated entry from raw input. The ID is left empty for
// the repository to assign. Amounts are coerced so that Profit >= 0 and
// Loss >= 0 always hold after ingestion.
func NewEntry(input NewEntryInput, now time.Time) (*Entry, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrMissingTitle
	}

	if input.Date.IsZero() {
		return nil, ErrMissingDate
	}

	if input.OwnerID == "" {
		return nil, ErrMissingOwner
	}

	return &Entry{
		OwnerID:   input.OwnerID,
		Title:     title,
		Date:      NormalizeDate(input.Date),
		Category:  ParseCategory(input.Category),
		Notes:     input.Notes,
		Profit:    CoerceAmount(input.Profit),
		Loss:      CoerceAmount(input.Loss),
		CreatedAt: now.UTC(),
	}, nil
}

// CoerceAmount parses a raw amount string. Empty, unparsable, or negative
// values collapse to zero so they can never poison aggregate totals.
func CoerceAmount(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero
	}

	d, err := decimal.NewFromString(raw)
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}

	return d
}

// ClampAmount forces an already-parsed amount into the non-negative range.
func ClampAmount(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// NormalizeDate strips the time component, keeping only the calendar date.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SortEntries orders entries for display: date descending, ties broken by
// creation time descending (newest insertion first).
func SortEntries(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.After(entries[j].Date)
		}
		return entries[i].CreatedAt.After(entries[j].CreatedAt)
	})
}
