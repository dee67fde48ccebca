package order

import (
	"context"

	"github.com/prabindersinghh/leorit-order-service/internal/domain"
	"github.com/prabindersinghh/leorit-order-service/internal/usecase"
	orderdto "github.com/prabindersinghh/leorit-order-service/internal/usecase/dto/order"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

func (uc *DefaultOrderUsecase) GetOrder(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error) {
	order, err := uc.OrderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, usecase.StatusError(err)
	}
	if d := domain.CanAccessOrder(actor, order); !d.Allowed {
		return nil, usecase.PermissionDenied(d)
	}
	return order, nil
}

// ListOrders scopes buyers and manufacturers to their own orders.
func (uc *DefaultOrderUsecase) ListOrders(ctx context.Context, actor domain.Actor, input *orderdto.ListOrdersInput) (*orderdto.ListOrdersOutput, error) {
	filter := domain.OrderFilter{
		BuyerID:        input.BuyerID,
		ManufacturerID: input.ManufacturerID,
		Page:           input.Page,
		Limit:          input.Limit,
	}
	switch actor.Role {
	case domain.RoleBuyer:
		filter.BuyerID = actor.ID
	case domain.RoleManufacturer:
		filter.ManufacturerID = actor.ID
	case domain.RoleAdmin, domain.RoleSystem:
	default:
		return nil, usecase.RequireRole(actor, domain.RoleAdmin)
	}

	for _, s := range input.States {
		state, err := domain.ParseOrderState(s)
		if err != nil {
			return nil, usecase.InvalidArgument(err.Error())
		}
		filter.States = append(filter.States, state)
	}
	for _, s := range input.PaymentStates {
		state, err := domain.ParsePaymentState(s)
		if err != nil {
			return nil, usecase.InvalidArgument(err.Error())
		}
		filter.PaymentStates = append(filter.PaymentStates, state)
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 {
		filter.Limit = defaultPageLimit
	}
	if filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}

	orders, total, err := uc.OrderRepo.ListOrders(ctx, filter)
	if err != nil {
		return nil, usecase.StatusError(err)
	}
	return &orderdto.ListOrdersOutput{
		Orders: orders,
		Total:  total,
		Page:   filter.Page,
		Limit:  filter.Limit,
	}, nil
}

func (uc *DefaultOrderUsecase) GetOrderTimeline(ctx context.Context, actor domain.Actor, orderID string) ([]*domain.OrderEvent, error) {
	if _, err := uc.GetOrder(ctx, actor, orderID); err != nil {
		return nil, err
	}
	events, err := uc.EventRepo.ListOrderEvents(ctx, orderID)
	if err != nil {
		return nil, usecase.StatusError(err)
	}
	return events, nil
}

// GetNextStates lists the table's next states that the order's mode can take.
func (uc *DefaultOrderUsecase) GetNextStates(ctx context.Context, actor domain.Actor, orderID string) (*orderdto.NextStatesView, error) {
	order, err := uc.GetOrder(ctx, actor, orderID)
	if err != nil {
		return nil, err
	}
	next := []domain.OrderState{}
	for _, s := range domain.ValidNextStates(order.State) {
		if domain.CanTransitionForMode(order.Mode, order.State, s).Allowed {
			next = append(next, s)
		}
	}
	return &orderdto.NextStatesView{
		State:      order.State,
		NextStates: next,
		Terminal:   domain.IsTerminalState(order.State),
	}, nil
}

func (uc *DefaultOrderUsecase) GetFieldLocks(ctx context.Context, actor domain.Actor, orderID string) (*orderdto.LockView, error) {
	order, err := uc.GetOrder(ctx, actor, orderID)
	if err != nil {
		return nil, err
	}
	locks := make(map[string]bool)
	for _, f := range domain.LockableFields() {
		locks[f] = domain.IsFieldLocked(f, order.State)
	}
	return &orderdto.LockView{
		State:        order.State,
		LockedFields: domain.LockedFields(order.State),
		Locks:        locks,
	}, nil
}

func (uc *DefaultOrderUsecase) GetExecutionGates(ctx context.Context, actor domain.Actor, orderID string) (*domain.ExecutionGates, error) {
	order, err := uc.GetOrder(ctx, actor, orderID)
	if err != nil {
		return nil, err
	}
	qc, err := uc.QCRepo.LatestQCRecord(ctx, orderID, domain.DeliveryQCStage(order.Mode))
	if err != nil {
		return nil, usecase.StatusError(err)
	}
	gates := domain.EvaluateGates(order, qc)
	return &gates, nil
}
