package response

import (
	"encoding/json"
	"time"

	"github.com/prabindersinghh/leorit-order-service/internal/domain"
)

type OrderResponse struct {
	ID               string              `json:"id"`
	BuyerID          string              `json:"buyer_id"`
	ManufacturerID   string              `json:"manufacturer_id,omitempty"`
	OrderMode        domain.OrderMode    `json:"order_mode"`
	OrderState       domain.OrderState   `json:"order_state"`
	PaymentState     domain.PaymentState `json:"payment_state"`
	Quantity         int                 `json:"quantity"`
	Fabric           string              `json:"fabric"`
	Color            string              `json:"color"`
	DesignURL        string              `json:"design_url"`
	SizeBreakdown    json.RawMessage     `json:"size_breakdown"`
	ShippingAddress  string              `json:"shipping_address"`
	SpecsLocked      bool                `json:"specs_locked"`
	TotalAmount      int64               `json:"total_amount"`
	Currency         string              `json:"currency"`
	SubmittedAt      *time.Time          `json:"submitted_at,omitempty"`
	AssignedAt       *time.Time          `json:"assigned_at,omitempty"`
	SampleApprovedAt *time.Time          `json:"sample_approved_at,omitempty"`
	QCUploadedAt     *time.Time          `json:"qc_uploaded_at,omitempty"`
	QCApprovedAt     *time.Time          `json:"qc_approved_at,omitempty"`
	DispatchedAt     *time.Time          `json:"dispatched_at,omitempty"`
	DeliveredAt      *time.Time          `json:"delivered_at,omitempty"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

func FromOrder(o *domain.Order) OrderResponse {
	sizes := json.RawMessage("{}")
	if o.SizeBreakdown != "" && json.Valid([]byte(o.SizeBreakdown)) {
		sizes = json.RawMessage(o.SizeBreakdown)
	}
	return OrderResponse{
		ID:               o.ID,
		BuyerID:          o.BuyerID,
		ManufacturerID:   o.ManufacturerID,
		OrderMode:        o.Mode,
		OrderState:       o.State,
		PaymentState:     o.PaymentState,
		Quantity:         o.Quantity,
		Fabric:           o.Fabric,
		Color:            o.Color,
		DesignURL:        o.DesignURL,
		SizeBreakdown:    sizes,
		ShippingAddress:  o.ShippingAddress,
		SpecsLocked:      o.SpecsLocked,
		TotalAmount:      o.TotalAmount,
		Currency:         o.Currency,
		SubmittedAt:      o.SubmittedAt,
		AssignedAt:       o.AssignedAt,
		SampleApprovedAt: o.SampleApprovedAt,
		QCUploadedAt:     o.QCUploadedAt,
		QCApprovedAt:     o.QCApprovedAt,
		DispatchedAt:     o.DispatchedAt,
		DeliveredAt:      o.DeliveredAt,
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int64           `json:"total"`
	Page   int             `json:"page"`
	Limit  int             `json:"limit"`
}

type OrderEventResponse struct {
	ID        string           `json:"id"`
	ActorID   string           `json:"actor_id"`
	ActorRole domain.Role      `json:"actor_role"`
	Kind      domain.EventKind `json:"kind"`
	From      string           `json:"from,omitempty"`
	To        string           `json:"to,omitempty"`
	Note      string           `json:"note,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

func FromOrderEvents(events []*domain.OrderEvent) []OrderEventResponse {
	out := make([]OrderEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, OrderEventResponse{
			ID:        e.ID,
			ActorID:   e.ActorID,
			ActorRole: e.ActorRole,
			Kind:      e.Kind,
			From:      e.From,
			To:        e.To,
			Note:      e.Note,
			CreatedAt: e.CreatedAt,
		})
	}
	return out
}
