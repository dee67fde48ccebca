package metrics

import "time"

// The Record helpers accept a nil receiver so callers can run without metrics.

func (m *OrderMetrics) RecordOrderCreated(mode string) {
	if m == nil {
		return
	}
	m.OrdersCreatedTotal.WithLabelValues(mode).Inc()
}

func (m *OrderMetrics) RecordTransition(from, to, role string) {
	if m == nil {
		return
	}
	m.OrderTransitionsTotal.WithLabelValues(from, to, role).Inc()
}

func (m *OrderMetrics) RecordDenied(operation, role string) {
	if m == nil {
		return
	}
	m.OrderTransitionsDenied.WithLabelValues(operation, role).Inc()
}

func (m *OrderMetrics) RecordFieldUpdates(fields []string) {
	if m == nil {
		return
	}
	for _, f := range fields {
		m.OrderFieldUpdatesTotal.WithLabelValues(f).Inc()
	}
}

func (m *OrderMetrics) RecordPaymentTransition(from, to, role string) {
	if m == nil {
		return
	}
	m.PaymentTransitionsTotal.WithLabelValues(from, to, role).Inc()
}

func (m *OrderMetrics) RecordPaymentDenied(operation, role string) {
	if m == nil {
		return
	}
	m.PaymentTransitionDenied.WithLabelValues(operation, role).Inc()
}

func (m *OrderMetrics) RecordEscrowReleased(currency string, amount int64) {
	if m == nil || amount <= 0 {
		return
	}
	m.EscrowReleasedAmount.WithLabelValues(currency).Add(float64(amount))
}

func (m *OrderMetrics) RecordQCUpload(stage string) {
	if m == nil {
		return
	}
	m.QCUploadsTotal.WithLabelValues(stage).Inc()
}

func (m *OrderMetrics) RecordQCDecision(stage, decision, role string) {
	if m == nil {
		return
	}
	m.QCDecisionsTotal.WithLabelValues(stage, decision, role).Inc()
}

func (m *OrderMetrics) ObserveOperation(operation string, start time.Time) {
	if m == nil {
		return
	}
	m.OperationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

func (m *OrderMetrics) RecordError(operation string) {
	if m == nil {
		return
	}
	m.OrderErrorsTotal.WithLabelValues(operation).Inc()
}
