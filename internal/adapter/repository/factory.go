package repository

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/finbook/finbook/internal/adapter/repository/memory"
	"github.com/finbook/finbook/internal/adapter/repository/postgres"
	"github.com/finbook/finbook/internal/adapter/repository/sqlite"
	"github.com/finbook/finbook/internal/usecase"
)

// Storage drivers.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

func noopClose() error { return nil }

// NewEntryRepository selects the entry storage strategy. The postgres driver
// needs a live pool; sqlite and memory run without one. The returned close
// func releases whatever the driver opened.
func NewEntryRepository(driver string, pool *pgxpool.Pool, sqlitePath string) (usecase.EntryRepository, func() error, error) {
	switch driver {
	case DriverPostgres:
		if pool == nil {
			return nil, nil, fmt.Errorf("postgres driver requires a connection pool")
		}
		return postgres.NewEntryRepository(pool), noopClose, nil

	case DriverSQLite:
		repo, err := sqlite.Open(sqlitePath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return repo, repo.Close, nil

	case DriverMemory:
		return memory.NewEntryRepository(), noopClose, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
