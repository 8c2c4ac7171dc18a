package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestAggregate(t *testing.T) {
	entries := []Entry{
		{Profit: decimal.NewFromInt(1000), Loss: decimal.Zero},
		{Profit: decimal.Zero, Loss: decimal.RequireFromString("250.50")},
		{Profit: decimal.NewFromInt(500), Loss: decimal.NewFromInt(100)},
	}

	totals := Aggregate(entries)

	if !totals.TotalProfit.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("totalProfit = %s, want 1500", totals.TotalProfit)
	}
	if !totals.TotalLoss.Equal(decimal.RequireFromString("350.50")) {
		t.Errorf("totalLoss = %s, want 350.50", totals.TotalLoss)
	}
	if !totals.Net.Equal(decimal.RequireFromString("1149.50")) {
		t.Errorf("net = %s, want 1149.50", totals.Net)
	}
}

func TestAggregate_NetIdentity(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
	}{
		{name: "empty", entries: nil},
		{name: "single income", entries: []Entry{{Profit: decimal.NewFromInt(42)}}},
		{name: "single expense", entries: []Entry{{Loss: decimal.RequireFromString("0.01")}}},
		{
			name: "mixed with fractions",
			entries: []Entry{
				{Profit: decimal.RequireFromString("0.1")},
				{Loss: decimal.RequireFromString("0.2")},
				{Profit: decimal.RequireFromString("0.3"), Loss: decimal.RequireFromString("0.05")},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			totals := Aggregate(tt.entries)
			if !totals.Net.Equal(totals.TotalProfit.Sub(totals.TotalLoss)) {
				t.Errorf("net %s != totalProfit %s - totalLoss %s",
					totals.Net, totals.TotalProfit, totals.TotalLoss)
			}
		})
	}
}

func TestAggregate_ClampsNegativeAmounts(t *testing.T) {
	entries := []Entry{
		{Profit: decimal.NewFromInt(-100), Loss: decimal.NewFromInt(-50)},
		{Profit: decimal.NewFromInt(10)},
	}

	totals := Aggregate(entries)

	if !totals.TotalProfit.Equal(decimal.NewFromInt(10)) {
		t.Errorf("totalProfit = %s, want 10", totals.TotalProfit)
	}
	if !totals.TotalLoss.IsZero() {
		t.Errorf("totalLoss = %s, want 0", totals.TotalLoss)
	}
}

func TestAggregate_InvariantUnderFilter(t *testing.T) {
	date := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	entries := []Entry{
		{Title: "Rent Payment", Category: CategoryBillsUtilities, Date: date, Loss: decimal.NewFromInt(1200)},
		{Title: "Salary", Category: CategorySalary, Date: date, Profit: decimal.NewFromInt(5000)},
		{Title: "Groceries", Category: CategoryFoodDining, Date: date, Loss: decimal.NewFromInt(300)},
	}

	before := Aggregate(entries)

	// Filtering narrows the visible subset but must never change what the
	// aggregation sees.
	for _, f := range []Filter{{Term: "rent"}, {Category: string(CategorySalary)}, {Term: "zzz"}} {
		_ = f.Apply(entries)
		after := Aggregate(entries)
		if !after.TotalProfit.Equal(before.TotalProfit) || !after.TotalLoss.Equal(before.TotalLoss) || !after.Net.Equal(before.Net) {
			t.Fatalf("totals changed under filter %+v", f)
		}
	}
}

func TestAggregateByCategory(t *testing.T) {
	entries := []Entry{
		{Category: CategoryFoodDining, Loss: decimal.NewFromInt(100)},
		{Category: CategoryFoodDining, Loss: decimal.NewFromInt(50)},
		{Category: CategorySalary, Profit: decimal.NewFromInt(4000)},
	}

	byCat := AggregateByCategory(entries)

	if len(byCat) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(byCat))
	}
	if !byCat[CategoryFoodDining].TotalLoss.Equal(decimal.NewFromInt(150)) {
		t.Errorf("food loss = %s, want 150", byCat[CategoryFoodDining].TotalLoss)
	}
	if !byCat[CategorySalary].Net.Equal(decimal.NewFromInt(4000)) {
		t.Errorf("salary net = %s, want 4000", byCat[CategorySalary].Net)
	}
}
