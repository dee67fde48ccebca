package domain

import "time"

type EventKind string

const (
	EventOrderState   EventKind = "order_state"
	EventPaymentState EventKind = "payment_state"
	EventQC           EventKind = "qc"
	EventFields       EventKind = "fields"
)

// OrderEvent is one entry of an order's audit trail.
type OrderEvent struct {
	ID        string
	OrderID   string
	ActorID   string
	ActorRole Role
	Kind      EventKind
	From      string
	To        string
	Note      string
	CreatedAt time.Time
}
