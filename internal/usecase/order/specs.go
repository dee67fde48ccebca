package order

import (
	"context"

	"github.com/prabindersinghh/leorit-order-service/internal/domain"
	"github.com/prabindersinghh/leorit-order-service/internal/usecase"
)

// LockSpecs freezes the production specification between assignment and the
// start of production.
func (uc *DefaultOrderUsecase) LockSpecs(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error) {
	if err := usecase.RequireRole(actor, domain.RoleBuyer, domain.RoleAdmin); err != nil {
		return nil, err
	}
	return uc.Lifecycle.Apply(ctx, "lock_specs", actor, orderID, func(op *usecase.Operation, order *domain.Order) error {
		if d := domain.CanLockSpecs(order); !d.Allowed {
			return usecase.FailedPrecondition(d)
		}
		order.SpecsLocked = true
		order.UpdatedAt = op.At
		op.Record(domain.EventFields, "", "", "specifications locked")
		return nil
	})
}
