package usecase

import (
	"context"
	"time"

	"github.com/finbook/finbook/internal/domain"
)

// EntryRepository is the storage strategy behind the record store. The two
// historical tracker variants (service-backed and local-file-backed) are
// implementations of this interface selected at composition time.
type EntryRepository interface {
	// Load fetches all entries for an owner, ordered by date descending with
	// newer insertions first on ties.
	Load(ctx context.Context, ownerID string) ([]domain.Entry, error)
	// Append persists one new entry. The entry's ID and CreatedAt are set by
	// the caller before the write.
	Append(ctx context.Context, entry *domain.Entry) error
	// Remove deletes an entry by id, scoped to its owner. Removing an id
	// that does not exist returns domain.ErrEntryNotFound.
	Remove(ctx context.Context, ownerID, id string) error
}

// UserRepository defines data access for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	List(ctx context.Context, limit, offset int) ([]*domain.User, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// IdempotencyStore handles idempotency key storage for mutating requests.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
