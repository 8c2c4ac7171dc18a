package domain

import "strings"

// CategoryAll is the filter sentinel matching every category.
const CategoryAll = "all"

// Filter decides which entries are visible in the table view. It narrows
// display only; aggregate totals are always computed over the full set.
type Filter struct {
	Term     string
	Category string
}

// IsZero reports whether the filter is a no-op.
func (f Filter) IsZero() bool {
	return strings.TrimSpace(f.Term) == "" && (f.Category == "" || f.Category == CategoryAll)
}

// Match reports whether an entry is visible under the filter. The text
// predicate and the category predicate combine with logical AND.
func (f Filter) Match(e Entry) bool {
	return f.matchTerm(e) && f.matchCategory(e)
}

func (f Filter) matchTerm(e Entry) bool {
	term := strings.ToLower(strings.TrimSpace(f.Term))
	if term == "" {
		return true
	}

	return strings.Contains(strings.ToLower(e.Title), term) ||
		strings.Contains(strings.ToLower(e.Notes), term)
}

func (f Filter) matchCategory(e Entry) bool {
	if f.Category == "" || f.Category == CategoryAll {
		return true
	}
	return e.Category == Category(f.Category)
}

// Apply returns the visible subset, preserving the input order.
func (f Filter) Apply(entries []Entry) []Entry {
	if f.IsZero() {
		out := make([]Entry, len(entries))
		copy(out, entries)
		return out
	}

	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if f.Match(e) {
			out = append(out, e)
		}
	}

	return out
}
