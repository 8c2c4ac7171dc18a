// Package repository composes the storage strategy: it owns the driver
// factory and the id generator shared by every driver.
package repository

import (
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// ULIDGenerator generates ULID ids. ULIDs sort by creation time, which keeps
// the tie-break ordering of same-date entries stable across storage drivers.
type ULIDGenerator struct {
	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewULIDGenerator creates a new ULIDGenerator.
func NewULIDGenerator() *ULIDGenerator {
	source := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &ULIDGenerator{
		entropy: ulid.Monotonic(source, 0),
	}
}

// Generate generates a new ULID.
func (g *ULIDGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy).String()
}
