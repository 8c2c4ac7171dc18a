package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()

	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("failed to read counter: %v", err)
	}

	return m.GetCounter().GetValue()
}

func TestObserveEntryCreated(t *testing.T) {
	before := counterValue(t, EntriesCreated)

	ObserveEntryCreated(100, 0)
	ObserveEntryCreated(0, 25)

	if got := counterValue(t, EntriesCreated); got != before+2 {
		t.Fatalf("expected entries counter to advance by 2, got %v -> %v", before, got)
	}
}

func TestObserveExport(t *testing.T) {
	before := counterValue(t, ExportsGenerated)

	ObserveExport(42)

	if got := counterValue(t, ExportsGenerated); got != before+1 {
		t.Fatalf("expected exports counter to advance, got %v -> %v", before, got)
	}
}

func TestObserveAuthAttempt(t *testing.T) {
	before := counterValue(t, AuthAttempts.WithLabelValues("failure"))

	ObserveAuthAttempt(false)
	ObserveAuthAttempt(true)

	if got := counterValue(t, AuthAttempts.WithLabelValues("failure")); got != before+1 {
		t.Fatalf("expected one failure recorded, got %v -> %v", before, got)
	}
}
