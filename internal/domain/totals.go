package domain

import "github.com/shopspring/decimal"

// Totals holds the aggregate figures for a set of entries. Net is always
// exactly TotalProfit minus TotalLoss.
type Totals struct {
	TotalProfit decimal.Decimal
	TotalLoss   decimal.Decimal
	Net         decimal.Decimal
}

// Aggregate folds entries into totals. It is a pure full recomputation; the
// collection is bounded by one owner's lifetime of entries, so incremental
// maintenance is not worth the bookkeeping.
func Aggregate(entries []Entry) Totals {
	totalProfit := decimal.Zero
	totalLoss := decimal.Zero

	for _, e := range entries {
		totalProfit = totalProfit.Add(ClampAmount(e.Profit))
		totalLoss = totalLoss.Add(ClampAmount(e.Loss))
	}

	return Totals{
		TotalProfit: totalProfit,
		TotalLoss:   totalLoss,
		Net:         totalProfit.Sub(totalLoss),
	}
}

// AggregateByCategory computes per-category totals over the same full set.
func AggregateByCategory(entries []Entry) map[Category]Totals {
	byCategory := make(map[Category]Totals)

	for _, e := range entries {
		t := byCategory[e.Category]
		t.TotalProfit = t.TotalProfit.Add(ClampAmount(e.Profit))
		t.TotalLoss = t.TotalLoss.Add(ClampAmount(e.Loss))
		t.Net = t.TotalProfit.Sub(t.TotalLoss)
		byCategory[e.Category] = t
	}

	return byCategory
}
