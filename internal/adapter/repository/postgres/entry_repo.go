package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finbook/finbook/internal/domain"
)

// EntryRepository implements usecase.EntryRepository on PostgreSQL. This is
// the service-backed tracker variant.
type EntryRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(pool *pgxpool.Pool) *EntryRepository {
	return &EntryRepository{
		pool:    pool,
		retrier: NewRetrier(),
	}
}

// Load fetches all entries for an owner in display order: date descending,
// newer insertions first on ties.
func (r *EntryRepository) Load(ctx context.Context, ownerID string) ([]domain.Entry, error) {
	query := `
		SELECT id, owner_id, title, entry_date, category, notes, profit, loss, created_at
		FROM entries
		WHERE owner_id = $1
		ORDER BY entry_date DESC, created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		var e domain.Entry
		var category string
		err := rows.Scan(
			&e.ID,
			&e.OwnerID,
			&e.Title,
			&e.Date,
			&category,
			&e.Notes,
			&e.Profit,
			&e.Loss,
			&e.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		e.Category = domain.Category(category)
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Append persists one new entry.
func (r *EntryRepository) Append(ctx context.Context, entry *domain.Entry) error {
	query := `
		INSERT INTO entries (id, owner_id, title, entry_date, category, notes, profit, loss, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	return r.retrier.Retry(ctx, func() error {
		_, err := r.pool.Exec(ctx, query,
			entry.ID,
			entry.OwnerID,
			entry.Title,
			entry.Date,
			string(entry.Category),
			entry.Notes,
			entry.Profit,
			entry.Loss,
			entry.CreatedAt,
		)
		return err
	})
}

// Remove deletes one entry scoped to its owner. A missing id reports
// domain.ErrEntryNotFound so the caller can decide whether that matters.
func (r *EntryRepository) Remove(ctx context.Context, ownerID, id string) error {
	query := `DELETE FROM entries WHERE owner_id = $1 AND id = $2`

	return r.retrier.Retry(ctx, func() error {
		tag, err := r.pool.Exec(ctx, query, ownerID, id)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return domain.ErrEntryNotFound
		}
		return nil
	})
}
