package order

import (
	"context"

	"github.com/prabindersinghh/leorit-order-service/internal/domain"
	"github.com/prabindersinghh/leorit-order-service/internal/usecase"
)

// workflowOwned reports edges that only their dedicated operation may take, because
// they carry data (manufacturer, QC records) a bare transition cannot supply.
func workflowOwned(from, to domain.OrderState) bool {
	switch to {
	case domain.StateManufacturerAssigned,
		domain.StateSampleQCUploaded,
		domain.StateSampleApproved,
		domain.StateBulkQCUploaded:
		return true
	case domain.StateReadyForDispatch:
		return from == domain.StateBulkQCUploaded
	}
	return false
}

// transitionGuard returns the gate a target state is subject to.
func transitionGuard(op *usecase.Operation, order *domain.Order, to domain.OrderState) (domain.Decision, error) {
	switch to {
	case domain.StateSubmitted:
		return domain.CanSubmit(order), nil
	case domain.StateSampleInProgress, domain.StateBulkInProduction:
		return domain.CanStartProduction(order), nil
	case domain.StateBulkUnlocked:
		return domain.CanUnlockBulk(order), nil
	case domain.StateReadyForDispatch:
		if order.SampleApprovedAt == nil {
			return domain.Deny("sample approval is not recorded"), nil
		}
	case domain.StateDispatched:
		qc, err := op.LatestQCRecord(domain.DeliveryQCStage(order.Mode))
		if err != nil {
			return domain.Decision{}, err
		}
		return domain.CanDispatch(order, qc), nil
	case domain.StateDelivered:
		return domain.CanConfirmDelivery(order), nil
	case domain.StateCompleted:
		return domain.CanComplete(order), nil
	}
	return domain.Allow(), nil
}

// TransitionOrder moves an order along any edge of the table that is not owned by a
// dedicated workflow. The same gates apply as in the dedicated operations.
func (uc *DefaultOrderUsecase) TransitionOrder(ctx context.Context, actor domain.Actor, orderID string, to domain.OrderState) (*domain.Order, error) {
	if !to.Valid() {
		return nil, usecase.InvalidArgument(domain.ErrUnknownOrderState.Error() + ": " + string(to))
	}
	return uc.Lifecycle.Apply(ctx, "transition", actor, orderID, func(op *usecase.Operation, order *domain.Order) error {
		if workflowOwned(order.State, to) {
			return usecase.FailedPrecondition(domain.Deny("%s -> %s is driven by its own workflow", order.State, to))
		}
		guard, err := transitionGuard(op, order, to)
		if err != nil {
			return err
		}
		return move(op, order, to, "manual transition", guard)
	})
}
