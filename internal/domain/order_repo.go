package domain

import "context"

type OrderFilter struct {
	BuyerID        string
	ManufacturerID string
	States         []OrderState
	PaymentStates  []PaymentState
	Page           int
	Limit          int
}

// OrderTx is the view of the store inside a locked order operation.
type OrderTx interface {
	LatestQCRecord(stage QCStage) (*QCRecord, error)
	GetQCRecord(qcID string) (*QCRecord, error)
	SaveQCRecord(rec *QCRecord) error
	AppendEvent(event *OrderEvent) error
}

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *Order, event *OrderEvent) error
	GetOrderByID(ctx context.Context, orderID string) (*Order, error)
	ListOrders(ctx context.Context, filter OrderFilter) ([]*Order, int64, error)
	// ProcessOrderOperation loads the order under a row lock and passes it to fn.
	// When fn returns nil the mutated order and everything written through tx are
	// committed together; otherwise nothing is.
	ProcessOrderOperation(ctx context.Context, orderID string, fn func(tx OrderTx, order *Order) error) (*Order, error)
}

type QCRepository interface {
	GetQCRecord(ctx context.Context, qcID string) (*QCRecord, error)
	ListQCRecords(ctx context.Context, orderID string) ([]*QCRecord, error)
	LatestQCRecord(ctx context.Context, orderID string, stage QCStage) (*QCRecord, error)
}

type OrderEventRepository interface {
	ListOrderEvents(ctx context.Context, orderID string) ([]*OrderEvent, error)
}

// EventPublisher pushes order events to the message bus.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, order *Order, event *OrderEvent) error
}
