package order

import (
	"context"
	"strings"

	"github.com/prabindersinghh/leorit-order-service/internal/domain"
	"github.com/prabindersinghh/leorit-order-service/internal/usecase"
)

// UpdateOrderFields edits order fields that are still unlocked in the order's state.
func (uc *DefaultOrderUsecase) UpdateOrderFields(ctx context.Context, actor domain.Actor, orderID string, patch domain.OrderPatch) (*domain.Order, error) {
	if err := usecase.RequireRole(actor, domain.RoleBuyer, domain.RoleAdmin); err != nil {
		return nil, err
	}
	fields := patch.Fields()
	order, err := uc.Lifecycle.Apply(ctx, "update_fields", actor, orderID, func(op *usecase.Operation, order *domain.Order) error {
		if d := domain.CanEditOrder(actor, order, patch); !d.Allowed {
			return usecase.FailedPrecondition(d)
		}
		patch.Apply(order)
		order.UpdatedAt = op.At
		op.Record(domain.EventFields, "", "", "updated "+strings.Join(fields, ", "))
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.Lifecycle.Metrics.RecordFieldUpdates(fields)
	return order, nil
}
