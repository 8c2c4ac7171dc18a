// Package metrics exposes Prometheus counters for ledger activity. HTTP
// transport metrics live in the middleware package; these track what the
// application actually did.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Entry metrics
	EntriesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finbook_entries_created_total",
		Help: "Total number of ledger entries recorded",
	})
	EntriesDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finbook_entries_deleted_total",
		Help: "Total number of ledger entries deleted",
	})
	EntryAmount = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "finbook_entry_amount",
			Help:    "Recorded entry amounts by kind",
			Buckets: []float64{1, 10, 100, 1000, 10000, 100000, 1000000},
		},
		[]string{"kind"},
	)

	// Export metrics
	ExportsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finbook_exports_generated_total",
		Help: "Total number of workbook exports generated",
	})
	ExportRows = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "finbook_export_rows",
		Help:    "Number of entry rows per exported workbook",
		Buckets: []float64{1, 10, 50, 100, 500, 1000, 5000},
	})

	// Authentication metrics
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "finbook_auth_attempts_total",
			Help: "Total authentication attempts by outcome",
		},
		[]string{"status"},
	)

	// User administration metrics
	UsersCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finbook_users_created_total",
		Help: "Total number of user accounts created",
	})
	BalanceCredits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "finbook_balance_credits_total",
		Help: "Total number of balance credit operations",
	})
)

// ObserveEntryCreated records a new entry with its profit and loss amounts.
func ObserveEntryCreated(profit, loss float64) {
	EntriesCreated.Inc()
	if profit > 0 {
		EntryAmount.WithLabelValues("profit").Observe(profit)
	}
	if loss > 0 {
		EntryAmount.WithLabelValues("loss").Observe(loss)
	}
}

// ObserveExport records a completed workbook export of n rows.
func ObserveExport(rows int) {
	ExportsGenerated.Inc()
	ExportRows.Observe(float64(rows))
}

// ObserveAuthAttempt records a login attempt.
func ObserveAuthAttempt(success bool) {
	status := "failure"
	if success {
		status = "success"
	}
	AuthAttempts.WithLabelValues(status).Inc()
}
