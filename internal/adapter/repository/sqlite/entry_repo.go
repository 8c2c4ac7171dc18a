// Package sqlite is the local-file tracker variant: the full collection
// lives in a single database file next to the binary, no service required.
package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"github.com/finbook/finbook/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS entries (
	id         TEXT PRIMARY KEY,
	owner_id   TEXT NOT NULL,
	title      TEXT NOT NULL,
	entry_date TEXT NOT NULL,
	category   TEXT NOT NULL,
	notes      TEXT NOT NULL DEFAULT '',
	profit     TEXT NOT NULL,
	loss       TEXT NOT NULL,
	created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_entries_owner ON entries (owner_id, entry_date DESC, created_at DESC);
`

// EntryRepository implements usecase.EntryRepository on a local SQLite file.
type EntryRepository struct {
	db *sql.DB
}

// Open opens (and if needed bootstraps) the database at path. ":memory:"
// gives an ephemeral store.
func Open(path string) (*EntryRepository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// SQLite serializes writers anyway; one connection avoids lock errors
	// and keeps :memory: databases coherent.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, err
	}

	return &EntryRepository{db: db}, nil
}

// Close releases the underlying database handle.
func (r *EntryRepository) Close() error {
	return r.db.Close()
}

// Load fetches all entries for an owner in display order.
func (r *EntryRepository) Load(ctx context.Context, ownerID string) ([]domain.Entry, error) {
	query := `
		SELECT id, owner_id, title, entry_date, category, notes, profit, loss, created_at
		FROM entries
		WHERE owner_id = ?
		ORDER BY entry_date DESC, created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Append persists one new entry.
func (r *EntryRepository) Append(ctx context.Context, entry *domain.Entry) error {
	query := `
		INSERT INTO entries (id, owner_id, title, entry_date, category, notes, profit, loss, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.OwnerID,
		entry.Title,
		entry.Date.UTC().Format(time.RFC3339),
		string(entry.Category),
		entry.Notes,
		entry.Profit.String(),
		entry.Loss.String(),
		entry.CreatedAt.UTC().Format(time.RFC3339Nano),
	)

	return err
}

// Remove deletes one entry scoped to its owner. A missing id reports
// domain.ErrEntryNotFound.
func (r *EntryRepository) Remove(ctx context.Context, ownerID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM entries WHERE owner_id = ? AND id = ?`, ownerID, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrEntryNotFound
	}

	return nil
}

func scanEntry(rows *sql.Rows) (domain.Entry, error) {
	var e domain.Entry
	var entryDate, category, profit, loss, createdAt string

	err := rows.Scan(
		&e.ID,
		&e.OwnerID,
		&e.Title,
		&entryDate,
		&category,
		&e.Notes,
		&profit,
		&loss,
		&createdAt,
	)
	if err != nil {
		return domain.Entry{}, err
	}

	if e.Date, err = time.Parse(time.RFC3339, entryDate); err != nil {
		return domain.Entry{}, err
	}
	if e.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return domain.Entry{}, err
	}
	if e.Profit, err = decimal.NewFromString(profit); err != nil {
		return domain.Entry{}, err
	}
	if e.Loss, err = decimal.NewFromString(loss); err != nil {
		return domain.Entry{}, err
	}
	e.Category = domain.Category(category)

	return e, nil
}
