package order

import (
	"context"

	"github.com/prabindersinghh/leorit-order-service/internal/domain"
	"github.com/prabindersinghh/leorit-order-service/internal/usecase"
)

func (uc *DefaultOrderUsecase) AssignManufacturer(ctx context.Context, actor domain.Actor, orderID, manufacturerID string) (*domain.Order, error) {
	return uc.Lifecycle.Apply(ctx, "assign_manufacturer", actor, orderID, func(op *usecase.Operation, order *domain.Order) error {
		if err := move(op, order, domain.StateManufacturerAssigned, "assigned to "+manufacturerID,
			domain.CanAssignManufacturer(order, manufacturerID)); err != nil {
			return err
		}
		order.ManufacturerID = manufacturerID
		return nil
	})
}
