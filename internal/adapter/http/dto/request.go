package dto

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finbook/finbook/internal/domain"
)

// ErrInvalidDate is returned when a date field is not in YYYY-MM-DD form.
var ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")

// CreateEntryRequest represents a request to record a new ledger entry.
// Profit and Loss arrive as strings and are coerced downstream: empty,
// unparsable, or negative values become zero rather than an error.
type CreateEntryRequest struct {
	Title    string `json:"title"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Notes    string `json:"notes,omitempty"`
	Profit   string `json:"profit"`
	Loss     string `json:"loss"`
}

// ToDomainInput converts to domain input. The owner is attached later from
// the session.
func (r *CreateEntryRequest) ToDomainInput() (domain.NewEntryInput, error) {
	var date time.Time
	if r.Date != "" {
		parsed, err := time.Parse("2006-01-02", r.Date)
		if err != nil {
			return domain.NewEntryInput{}, ErrInvalidDate
		}
		date = parsed
	}

	return domain.NewEntryInput{
		Title:    r.Title,
		Date:     date,
		Category: r.Category,
		Notes:    r.Notes,
		Profit:   r.Profit,
		Loss:     r.Loss,
	}, nil
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CreateUserRequest represents an admin request to create a user account.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UpdateUserRequest carries the editable profile fields. Absent fields leave
// the current value untouched.
type UpdateUserRequest struct {
	Name   *string `json:"name,omitempty"`
	Email  *string `json:"email,omitempty"`
	Active *bool   `json:"active,omitempty"`
}

// CreditBalanceRequest represents an admin request to credit a user's
// platform balance.
type CreditBalanceRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// PaginationRequest represents pagination parameters.
type PaginationRequest struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
