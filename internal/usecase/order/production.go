package order

import (
	"context"

	"github.com/prabindersinghh/leorit-order-service/internal/domain"
	"github.com/prabindersinghh/leorit-order-service/internal/usecase"
)

func (uc *DefaultOrderUsecase) StartSample(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error) {
	return uc.Lifecycle.Apply(ctx, "start_sample", actor, orderID, func(op *usecase.Operation, order *domain.Order) error {
		return move(op, order, domain.StateSampleInProgress, "sample production started", domain.CanStartProduction(order))
	})
}

func (uc *DefaultOrderUsecase) UnlockBulk(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error) {
	return uc.Lifecycle.Apply(ctx, "unlock_bulk", actor, orderID, func(op *usecase.Operation, order *domain.Order) error {
		return move(op, order, domain.StateBulkUnlocked, "bulk unlocked", domain.CanUnlockBulk(order))
	})
}

func (uc *DefaultOrderUsecase) StartBulkProduction(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error) {
	return uc.Lifecycle.Apply(ctx, "start_bulk", actor, orderID, func(op *usecase.Operation, order *domain.Order) error {
		return move(op, order, domain.StateBulkInProduction, "bulk production started", domain.CanStartProduction(order))
	})
}
