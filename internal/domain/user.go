package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// User represents an account holder. Balance is the platform credit managed
// by the admin subsystem, unrelated to ledger entry amounts.
type User struct {
	ID             string
	Email          string
	Name           string
	HashedPassword string
	Role           Role
	Balance        decimal.Decimal
	Active         bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Role represents a user's access level.
type Role string

const (
	// RoleAdmin can list and edit any user account and balance.
	RoleAdmin Role = "admin"

	// RoleUser can only manage their own ledger entries.
	RoleUser Role = "user"
)

var validRoles = map[Role]bool{
	RoleAdmin: true,
	RoleUser:  true,
}

// IsValid checks if the role is a valid role.
func (r Role) IsValid() bool {
	return validRoles[r]
}

// CanManageUsers checks if the role can list and edit user accounts.
func (r Role) CanManageUsers() bool {
	return r == RoleAdmin
}

// Session identifies an authenticated owner for the lifetime of a login. It
// is created at login and passed explicitly into everything that reads or
// writes owner-scoped data; there is no ambient user context.
type Session struct {
	UserID string
	Email  string
	Role   Role
}

// Authentication errors
var (
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token has expired")
	ErrInsufficientRole = errors.New("insufficient role for this operation")
)
