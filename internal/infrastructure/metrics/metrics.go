package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// OrderMetrics holds the lifecycle metrics of the service.
type OrderMetrics struct {
	// Orders
	OrdersCreatedTotal     *prometheus.CounterVec
	OrderTransitionsTotal  *prometheus.CounterVec
	OrderTransitionsDenied *prometheus.CounterVec
	OrderFieldUpdatesTotal *prometheus.CounterVec

	// Escrow
	PaymentTransitionsTotal *prometheus.CounterVec
	PaymentTransitionDenied *prometheus.CounterVec
	EscrowReleasedAmount    *prometheus.CounterVec

	// QC
	QCUploadsTotal   *prometheus.CounterVec
	QCDecisionsTotal *prometheus.CounterVec

	OperationDuration *prometheus.HistogramVec
	OrderErrorsTotal  *prometheus.CounterVec
}

func NewOrderMetrics(reg prometheus.Registerer) *OrderMetrics {
	factory := promauto.With(reg)
	return &OrderMetrics{
		OrdersCreatedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_created_total",
				Help: "Number of draft orders created",
			},
			[]string{"order_mode"},
		),
		OrderTransitionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_transitions_total",
				Help: "Applied order state transitions",
			},
			[]string{"from", "to", "actor_role"},
		),
		OrderTransitionsDenied: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_transitions_denied_total",
				Help: "Order operations rejected by a guard",
			},
			[]string{"operation", "actor_role"},
		),
		OrderFieldUpdatesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_field_updates_total",
				Help: "Order field edits by field",
			},
			[]string{"field"},
		),
		PaymentTransitionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_transitions_total",
				Help: "Applied escrow state transitions",
			},
			[]string{"from", "to", "actor_role"},
		),
		PaymentTransitionDenied: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "payment_transitions_denied_total",
				Help: "Escrow operations rejected by a guard",
			},
			[]string{"operation", "actor_role"},
		),
		EscrowReleasedAmount: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "escrow_released_amount_total",
				Help: "Released escrow in minor units",
			},
			[]string{"currency"},
		),
		QCUploadsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "qc_uploads_total",
				Help: "QC evidence uploads",
			},
			[]string{"stage"},
		),
		QCDecisionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "qc_decisions_total",
				Help: "QC decisions by stage and outcome",
			},
			[]string{"stage", "decision", "actor_role"},
		),
		OperationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "order_operation_duration_seconds",
				Help:    "Duration of order operations",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		OrderErrorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "order_errors_total",
				Help: "Order operations that failed with an internal error",
			},
			[]string{"operation"},
		),
	}
}
