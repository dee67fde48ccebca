package order

import (
	"context"

	"github.com/prabindersinghh/leorit-order-service/internal/domain"
	"github.com/prabindersinghh/leorit-order-service/internal/usecase"
)

func (uc *DefaultOrderUsecase) SubmitOrder(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error) {
	return uc.Lifecycle.Apply(ctx, "submit", actor, orderID, func(op *usecase.Operation, order *domain.Order) error {
		return move(op, order, domain.StateSubmitted, "order submitted", domain.CanSubmit(order))
	})
}
