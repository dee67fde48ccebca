package publisher

import (
	"time"

	"github.com/prabindersinghh/leorit-order-service/internal/domain"
)

// OrderEvent is the message published on the order events topic.
type OrderEvent struct {
	EventID        string    `json:"event_id"`
	OrderID        string    `json:"order_id"`
	BuyerID        string    `json:"buyer_id"`
	ManufacturerID string    `json:"manufacturer_id,omitempty"`
	Kind           string    `json:"kind"`
	From           string    `json:"from,omitempty"`
	To             string    `json:"to,omitempty"`
	Note           string    `json:"note,omitempty"`
	ActorID        string    `json:"actor_id"`
	ActorRole      string    `json:"actor_role"`
	OrderState     string    `json:"order_state"`
	PaymentState   string    `json:"payment_state"`
	OrderMode      string    `json:"order_mode"`
	TotalAmount    int64     `json:"total_amount"`
	Currency       string    `json:"currency"`
	OccurredAt     time.Time `json:"occurred_at"`
}

func NewOrderEvent(order *domain.Order, event *domain.OrderEvent) OrderEvent {
	return OrderEvent{
		EventID:        event.ID,
		OrderID:        order.ID,
		BuyerID:        order.BuyerID,
		ManufacturerID: order.ManufacturerID,
		Kind:           string(event.Kind),
		From:           event.From,
		To:             event.To,
		Note:           event.Note,
		ActorID:        event.ActorID,
		ActorRole:      string(event.ActorRole),
		OrderState:     string(order.State),
		PaymentState:   string(order.PaymentState),
		OrderMode:      string(order.Mode),
		TotalAmount:    order.TotalAmount,
		Currency:       order.Currency,
		OccurredAt:     event.CreatedAt,
	}
}
