package order

import (
	"context"

	"github.com/prabindersinghh/leorit-order-service/internal/domain"
	"github.com/prabindersinghh/leorit-order-service/internal/usecase"
)

func (uc *DefaultOrderUsecase) DispatchOrder(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error) {
	return uc.Lifecycle.Apply(ctx, "dispatch", actor, orderID, func(op *usecase.Operation, order *domain.Order) error {
		qc, err := op.LatestQCRecord(domain.DeliveryQCStage(order.Mode))
		if err != nil {
			return err
		}
		return move(op, order, domain.StateDispatched, "order dispatched", domain.CanDispatch(order, qc))
	})
}

func (uc *DefaultOrderUsecase) ConfirmDelivery(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error) {
	return uc.Lifecycle.Apply(ctx, "confirm_delivery", actor, orderID, func(op *usecase.Operation, order *domain.Order) error {
		return move(op, order, domain.StateDelivered, "delivery confirmed", domain.CanConfirmDelivery(order))
	})
}

func (uc *DefaultOrderUsecase) CompleteOrder(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error) {
	return uc.Lifecycle.Apply(ctx, "complete", actor, orderID, func(op *usecase.Operation, order *domain.Order) error {
		return move(op, order, domain.StateCompleted, "order completed", domain.CanComplete(order))
	})
}
