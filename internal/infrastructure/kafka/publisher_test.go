package publisher

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/prabindersinghh/leorit-order-service/internal/domain"
	"go.uber.org/zap"
)

func TestNewOrderEvent(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	order := &domain.Order{
		ID:           "o-1",
		BuyerID:      "b-1",
		Mode:         domain.ModeDirectBulk,
		State:        domain.StateSubmitted,
		PaymentState: domain.PaymentInitiated,
		TotalAmount:  10000,
		Currency:     "INR",
	}
	event := &domain.OrderEvent{
		ID:        "e-1",
		OrderID:   "o-1",
		ActorID:   "b-1",
		ActorRole: domain.RoleBuyer,
		Kind:      domain.EventOrderState,
		From:      string(domain.StateDraft),
		To:        string(domain.StateSubmitted),
		CreatedAt: at,
	}

	raw, err := json.Marshal(NewOrderEvent(order, event))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	want := map[string]any{
		"order_id":    "o-1",
		"kind":        "order_state",
		"from":        "DRAFT",
		"to":          "SUBMITTED",
		"actor_role":  "buyer",
		"order_state": "SUBMITTED",
	}
	for key, value := range want {
		if decoded[key] != value {
			t.Errorf("%s = %v, want %v", key, decoded[key], value)
		}
	}
	if _, ok := decoded["manufacturer_id"]; ok {
		t.Errorf("empty manufacturer_id should be omitted")
	}
}

func TestLogPublisher(t *testing.T) {
	p := NewLogPublisher(zap.NewNop())
	err := p.PublishOrderEvent(context.Background(), &domain.Order{ID: "o-1"}, &domain.OrderEvent{Kind: domain.EventQC})
	if err != nil {
		t.Fatalf("PublishOrderEvent: %v", err)
	}
}
