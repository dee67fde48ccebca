package order

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prabindersinghh/leorit-order-service/internal/domain"
	"github.com/prabindersinghh/leorit-order-service/internal/usecase"
	orderdto "github.com/prabindersinghh/leorit-order-service/internal/usecase/dto/order"
	"go.uber.org/zap"
)

const defaultCurrency = "INR"

func (uc *DefaultOrderUsecase) CreateOrder(ctx context.Context, actor domain.Actor, input *orderdto.CreateOrderInput) (*domain.Order, error) {
	start := time.Now()
	defer uc.Lifecycle.Metrics.ObserveOperation("create", start)

	if err := usecase.RequireRole(actor, domain.RoleBuyer, domain.RoleAdmin); err != nil {
		return nil, err
	}
	buyerID := input.BuyerID
	if actor.Role == domain.RoleBuyer {
		buyerID = actor.ID
	}
	if buyerID == "" {
		return nil, usecase.InvalidArgument("buyer id is required")
	}
	mode, err := domain.ParseOrderMode(input.Mode)
	if err != nil {
		return nil, usecase.InvalidArgument(err.Error())
	}
	if input.Quantity <= 0 {
		return nil, usecase.InvalidArgument("quantity must be positive")
	}
	if input.TotalAmount < 0 {
		return nil, usecase.InvalidArgument("order total cannot be negative")
	}
	currency := input.Currency
	if currency == "" {
		currency = defaultCurrency
	}

	now := uc.Lifecycle.Now()
	order := &domain.Order{
		ID:              uuid.NewString(),
		BuyerID:         buyerID,
		Mode:            mode,
		State:           domain.StateDraft,
		PaymentState:    domain.PaymentInitiated,
		Quantity:        input.Quantity,
		Fabric:          input.Fabric,
		Color:           input.Color,
		DesignURL:       input.DesignURL,
		SizeBreakdown:   input.SizeBreakdown,
		ShippingAddress: input.ShippingAddress,
		TotalAmount:     input.TotalAmount,
		Currency:        currency,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	event := &domain.OrderEvent{
		ID:        uuid.NewString(),
		OrderID:   order.ID,
		ActorID:   actor.ID,
		ActorRole: actor.Role,
		Kind:      domain.EventOrderState,
		To:        string(domain.StateDraft),
		Note:      "order created",
		CreatedAt: now,
	}

	if err := uc.OrderRepo.CreateOrder(ctx, order, event); err != nil {
		uc.Lifecycle.Metrics.RecordError("create")
		uc.Lifecycle.Log.Error("failed to create order", zap.String("buyer_id", buyerID), zap.Error(err))
		return nil, usecase.StatusError(err)
	}

	uc.Lifecycle.Metrics.RecordOrderCreated(string(mode))
	uc.Lifecycle.Log.Info("order created",
		zap.String("order_id", order.ID),
		zap.String("buyer_id", buyerID),
		zap.String("order_mode", string(mode)),
	)
	uc.Lifecycle.Publish(ctx, order, event)
	return order, nil
}
