package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finbook/finbook/internal/domain"
	"github.com/finbook/finbook/internal/format"
)

// EntryResponse represents a ledger entry in API responses. The Display
// fields carry the locale-rendered forms the table shows verbatim.
type EntryResponse struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Date          time.Time       `json:"date"`
	Category      domain.Category `json:"category"`
	Notes         string          `json:"notes,omitempty"`
	Profit        decimal.Decimal `json:"profit"`
	Loss          decimal.Decimal `json:"loss"`
	CreatedAt     time.Time       `json:"created_at"`
	DisplayDate   string          `json:"display_date"`
	DisplayProfit string          `json:"display_profit"`
	DisplayLoss   string          `json:"display_loss"`
	CategoryColor ColorResponse   `json:"category_color"`
}

// ColorResponse is the badge styling hint for a category.
type ColorResponse struct {
	Background string `json:"background"`
	Foreground string `json:"foreground"`
}

// EntryFromDomain converts a domain entry to a response.
func EntryFromDomain(e domain.Entry, fmtr *format.CurrencyFormatter) *EntryResponse {
	hint := format.CategoryColor(e.Category)
	return &EntryResponse{
		ID:            e.ID,
		Title:         e.Title,
		Date:          e.Date,
		Category:      e.Category,
		Notes:         e.Notes,
		Profit:        e.Profit,
		Loss:          e.Loss,
		CreatedAt:     e.CreatedAt,
		DisplayDate:   format.DisplayDate(e.Date),
		DisplayProfit: fmtr.Format(e.Profit),
		DisplayLoss:   fmtr.Format(e.Loss),
		CategoryColor: ColorResponse{
			Background: hint.Background,
			Foreground: hint.Foreground,
		},
	}
}

// EntriesFromDomain converts domain entries to responses.
func EntriesFromDomain(entries []domain.Entry, fmtr *format.CurrencyFormatter) []*EntryResponse {
	result := make([]*EntryResponse, len(entries))
	for i, e := range entries {
		result[i] = EntryFromDomain(e, fmtr)
	}
	return result
}

// ListEntriesResponse is the paginated, filtered table view. Matched counts
// the filter hits; Total counts the whole collection.
type ListEntriesResponse struct {
	Entries  []*EntryResponse `json:"entries"`
	Matched  int              `json:"matched"`
	Total    int              `json:"total"`
	Degraded bool             `json:"degraded,omitempty"`
}

// TotalsResponse represents aggregate figures over the full collection.
type TotalsResponse struct {
	TotalProfit        decimal.Decimal `json:"total_profit"`
	TotalLoss          decimal.Decimal `json:"total_loss"`
	Net                decimal.Decimal `json:"net"`
	DisplayTotalProfit string          `json:"display_total_profit"`
	DisplayTotalLoss   string          `json:"display_total_loss"`
	DisplayNet         string          `json:"display_net"`
}

// TotalsFromDomain converts domain totals to a response.
func TotalsFromDomain(t domain.Totals, fmtr *format.CurrencyFormatter) TotalsResponse {
	return TotalsResponse{
		TotalProfit:        t.TotalProfit,
		TotalLoss:          t.TotalLoss,
		Net:                t.Net,
		DisplayTotalProfit: fmtr.Format(t.TotalProfit),
		DisplayTotalLoss:   fmtr.Format(t.TotalLoss),
		DisplayNet:         fmtr.Format(t.Net),
	}
}

// SummaryResponse is the headline summary view.
type SummaryResponse struct {
	Totals     TotalsResponse                     `json:"totals"`
	ByCategory map[domain.Category]TotalsResponse `json:"by_category"`
	Count      int                                `json:"count"`
	Degraded   bool                               `json:"degraded,omitempty"`
}

// UserResponse represents a user in API responses.
type UserResponse struct {
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	Name      string          `json:"name"`
	Role      domain.Role     `json:"role"`
	Balance   decimal.Decimal `json:"balance"`
	Active    bool            `json:"active"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// UserFromDomain converts a domain user to a response.
func UserFromDomain(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		Balance:   u.Balance,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// UsersFromDomain converts domain users to responses.
func UsersFromDomain(users []*domain.User) []*UserResponse {
	result := make([]*UserResponse, len(users))
	for i, u := range users {
		result[i] = UserFromDomain(u)
	}
	return result
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
