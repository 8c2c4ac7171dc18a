package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/finbook/finbook/internal/domain"
)

// LedgerUseCase handles ledger entry business logic. Each operation builds a
// fresh per-session record store, mirroring a page view over the owner's
// full collection.
type LedgerUseCase struct {
	repo   EntryRepository
	idGen  IDGenerator
	logger zerolog.Logger
	now    func() time.Time
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(repo EntryRepository, idGen IDGenerator, logger zerolog.Logger) *LedgerUseCase {
	return &LedgerUseCase{
		repo:   repo,
		idGen:  idGen,
		logger: logger,
		now:    time.Now,
	}
}

// ListEntriesInput represents input for listing entries.
type ListEntriesInput struct {
	Filter domain.Filter
	Limit  int
	Offset int
}

// ListEntriesOutput carries the visible page plus the collection counts the
// table header shows ("n of m entries").
type ListEntriesOutput struct {
	Entries  []domain.Entry
	Matched  int
	Total    int
	Degraded bool
}

// ListEntries loads the owner's collection, applies the visibility filter,
// and paginates over the already-fetched slice.
func (uc *LedgerUseCase) ListEntries(ctx context.Context, session domain.Session, input ListEntriesInput) (*ListEntriesOutput, error) {
	store := uc.store(session)
	store.Load(ctx)

	filtered := store.Filtered(input.Filter)
	matched := len(filtered)

	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)
	if offset > matched {
		offset = matched
	}
	end := offset + limit
	if end > matched {
		end = matched
	}

	return &ListEntriesOutput{
		Entries:  filtered[offset:end],
		Matched:  matched,
		Total:    store.Len(),
		Degraded: store.Degraded(),
	}, nil
}

// CreateEntry validates, coerces, and persists a new entry for the session
// owner. The id is assigned here, before the write, so the caller gets the
// stored record back verbatim.
func (uc *LedgerUseCase) CreateEntry(ctx context.Context, session domain.Session, input domain.NewEntryInput) (*domain.Entry, error) {
	input.OwnerID = session.UserID

	entry, err := domain.NewEntry(input, uc.now())
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateEntryText(entry.Title, entry.Notes); err != nil {
		return nil, err
	}

	entry.ID = uc.idGen.Generate()

	if err := uc.repo.Append(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// DeleteEntry removes one entry by id. Deleting an id that is already gone
// is a no-op; the caller cannot tell the two outcomes apart.
func (uc *LedgerUseCase) DeleteEntry(ctx context.Context, session domain.Session, id string) error {
	err := uc.repo.Remove(ctx, session.UserID, id)
	if err == domain.ErrEntryNotFound {
		uc.logger.Debug().
			Str("owner_id", session.UserID).
			Str("entry_id", id).
			Msg("delete of missing entry treated as success")
		return nil
	}

	return err
}

// SummaryOutput carries the all-time aggregate figures.
type SummaryOutput struct {
	Totals     domain.Totals
	ByCategory map[domain.Category]domain.Totals
	Count      int
	Degraded   bool
}

// Summary computes the headline totals over the full collection. The active
// table filter never reaches this computation.
func (uc *LedgerUseCase) Summary(ctx context.Context, session domain.Session) (*SummaryOutput, error) {
	store := uc.store(session)
	store.Load(ctx)

	return &SummaryOutput{
		Totals:     store.Totals(),
		ByCategory: store.TotalsByCategory(),
		Count:      store.Len(),
		Degraded:   store.Degraded(),
	}, nil
}

func (uc *LedgerUseCase) store(session domain.Session) *RecordStore {
	return NewRecordStore(uc.repo, session, uc.logger)
}
