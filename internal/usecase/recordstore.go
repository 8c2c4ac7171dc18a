package usecase

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/finbook/finbook/internal/domain"
)

// RecordStore holds the authoritative in-memory copy of one owner's ledger
// entries for the lifetime of a session view. It is owned exclusively by the
// caller that created it and is not safe for concurrent use; each request or
// page view gets its own store.
type RecordStore struct {
	repo     EntryRepository
	session  domain.Session
	logger   zerolog.Logger
	entries  []domain.Entry
	degraded bool
}

// NewRecordStore creates an empty record store bound to a session. Load must
// be called before reading.
func NewRecordStore(repo EntryRepository, session domain.Session, logger zerolog.Logger) *RecordStore {
	return &RecordStore{
		repo:    repo,
		session: session,
		logger:  logger,
	}
}

// Load fetches all of the owner's entries in one call. A fetch failure never
// blocks the view: the store degrades to empty, the error is logged, and the
// Degraded flag is raised so the surface can show a non-blocking notice.
func (s *RecordStore) Load(ctx context.Context) {
	entries, err := s.repo.Load(ctx, s.session.UserID)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("owner_id", s.session.UserID).
			Msg("failed to load entries, degrading to empty store")

		s.entries = nil
		s.degraded = true
		return
	}

	domain.SortEntries(entries)
	s.entries = entries
	s.degraded = false
}

// Append persists a new entry and, only after the remote write succeeds,
// inserts it at the front of the in-memory collection.
func (s *RecordStore) Append(ctx context.Context, entry *domain.Entry) error {
	if err := s.repo.Append(ctx, entry); err != nil {
		return err
	}

	s.entries = append([]domain.Entry{*entry}, s.entries...)
	return nil
}

// Remove deletes remotely first; the local copy is spliced out only on
// remote success. A remote not-found is treated as already removed, so
// deletion is idempotent from the caller's perspective.
func (s *RecordStore) Remove(ctx context.Context, id string) error {
	err := s.repo.Remove(ctx, s.session.UserID, id)
	if err != nil && err != domain.ErrEntryNotFound {
		return err
	}

	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			break
		}
	}

	return nil
}

// Entries returns the full in-memory collection in display order.
func (s *RecordStore) Entries() []domain.Entry {
	return s.entries
}

// Filtered returns the visible subset for a filter, preserving order.
func (s *RecordStore) Filtered(f domain.Filter) []domain.Entry {
	return f.Apply(s.entries)
}

// Totals aggregates over the ENTIRE store, never the filtered subset. The
// summary cards stay stable while the table beneath them is explored.
func (s *RecordStore) Totals() domain.Totals {
	return domain.Aggregate(s.entries)
}

// TotalsByCategory aggregates per category over the entire store.
func (s *RecordStore) TotalsByCategory() map[domain.Category]domain.Totals {
	return domain.AggregateByCategory(s.entries)
}

// Degraded reports whether the last Load failed and the store is serving an
// empty collection in its place.
func (s *RecordStore) Degraded() bool {
	return s.degraded
}

// Len returns the number of entries held.
func (s *RecordStore) Len() int {
	return len(s.entries)
}
