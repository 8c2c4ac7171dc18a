package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finbook/finbook/internal/domain"
	"github.com/finbook/finbook/internal/format"
)

func TestEntryFromDomain(t *testing.T) {
	fmtr := format.NewCurrencyFormatter(format.LocaleIndia)
	entry := domain.Entry{
		ID:       "e-1",
		Title:    "Salary",
		Date:     time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Category: domain.CategorySalary,
		Profit:   decimal.RequireFromString("1234.5"),
	}

	resp := EntryFromDomain(entry, fmtr)
	if resp.ID != entry.ID || resp.DisplayDate != "Mar 15, 2024" {
		t.Fatalf("unexpected entry response: %+v", resp)
	}
	if resp.DisplayProfit != "₹1,234.50" {
		t.Fatalf("unexpected display profit: %s", resp.DisplayProfit)
	}
	if resp.CategoryColor.Background == "" {
		t.Fatal("expected a category color hint")
	}

	list := EntriesFromDomain([]domain.Entry{entry}, fmtr)
	if len(list) != 1 || list[0].ID != entry.ID {
		t.Fatalf("EntriesFromDomain returned %+v", list)
	}
}

func TestTotalsFromDomain(t *testing.T) {
	fmtr := format.NewCurrencyFormatter(format.LocaleUS)
	totals := domain.Totals{
		TotalProfit: decimal.RequireFromString("1500"),
		TotalLoss:   decimal.RequireFromString("350.50"),
		Net:         decimal.RequireFromString("1149.50"),
	}

	resp := TotalsFromDomain(totals, fmtr)
	if resp.DisplayNet != "$1,149.50" {
		t.Fatalf("unexpected display net: %s", resp.DisplayNet)
	}
	if !resp.Net.Equal(totals.Net) {
		t.Fatalf("raw net must round-trip, got %s", resp.Net)
	}
}

func TestUserFromDomain(t *testing.T) {
	user := &domain.User{
		ID:      "u-1",
		Email:   "a@b.co",
		Role:    domain.RoleAdmin,
		Balance: decimal.RequireFromString("12.34"),
		Active:  true,
	}

	resp := UserFromDomain(user)
	if resp.ID != user.ID || resp.Role != domain.RoleAdmin || !resp.Active {
		t.Fatalf("unexpected user response: %+v", resp)
	}

	list := UsersFromDomain([]*domain.User{user})
	if len(list) != 1 || list[0].ID != user.ID {
		t.Fatalf("UsersFromDomain returned %+v", list)
	}
}
