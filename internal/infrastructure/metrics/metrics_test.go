package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewOrderMetricsRegisters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewOrderMetrics(reg)
	m.OrderTransitionsTotal.WithLabelValues("DRAFT", "SUBMITTED", "buyer").Inc()

	if got := testutil.ToFloat64(m.OrderTransitionsTotal.WithLabelValues("DRAFT", "SUBMITTED", "buyer")); got != 1 {
		t.Fatalf("counter = %v", got)
	}
	if n, err := testutil.GatherAndCount(reg, "order_transitions_total"); err != nil || n != 1 {
		t.Fatalf("GatherAndCount = %d, %v", n, err)
	}
}

func TestSeparateRegistries(t *testing.T) {
	NewOrderMetrics(prometheus.NewRegistry())
	NewOrderMetrics(prometheus.NewRegistry())
}

func TestNilMetricsAreNoop(t *testing.T) {
	var m *OrderMetrics
	m.RecordOrderCreated("direct_bulk")
	m.RecordTransition("DRAFT", "SUBMITTED", "buyer")
	m.RecordDenied("submit", "buyer")
	m.RecordFieldUpdates([]string{"quantity"})
	m.RecordEscrowReleased("INR", 100)
	m.RecordError("submit")
}

func TestRecordEscrowReleased(t *testing.T) {
	m := NewOrderMetrics(prometheus.NewRegistry())
	m.RecordEscrowReleased("INR", 4500)
	m.RecordEscrowReleased("INR", 0)

	if got := testutil.ToFloat64(m.EscrowReleasedAmount.WithLabelValues("INR")); got != 4500 {
		t.Fatalf("released amount = %v, want 4500", got)
	}
}
