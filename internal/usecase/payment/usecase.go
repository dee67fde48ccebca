package payment

import (
	"context"

	"github.com/prabindersinghh/leorit-order-service/internal/domain"
	"github.com/prabindersinghh/leorit-order-service/internal/usecase"
	paymentdto "github.com/prabindersinghh/leorit-order-service/internal/usecase/dto/payment"
)

type PaymentUsecase interface {
	FundEscrow(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error)
	MarkReleasable(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error)
	ReleasePayment(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error)
	RefundPayment(ctx context.Context, actor domain.Actor, orderID, reason string) (*domain.Order, error)
	GetEscrow(ctx context.Context, actor domain.Actor, orderID string) (*paymentdto.EscrowOutput, error)
	MarkReleasableOrders(ctx context.Context) (*paymentdto.SweepOutput, error)
}

type DefaultPaymentUsecase struct {
	OrderRepo domain.OrderRepository
	Lifecycle *usecase.Lifecycle
}

func NewDefaultPaymentUsecase(orderRepo domain.OrderRepository, lifecycle *usecase.Lifecycle) *DefaultPaymentUsecase {
	return &DefaultPaymentUsecase{
		OrderRepo: orderRepo,
		Lifecycle: lifecycle,
	}
}

// movePayment checks the escrow table and the actor before the operation's guards.
func movePayment(op *usecase.Operation, order *domain.Order, to domain.PaymentState, note string, guards ...domain.Decision) error {
	if !domain.CanTransitionPayment(order.PaymentState, to) {
		return usecase.FailedPrecondition(domain.Deny("cannot move payment from %s to %s", order.PaymentState, to))
	}
	if d := domain.CanActorPerformPaymentTransition(op.Actor.Role, order.PaymentState, to); !d.Allowed {
		return usecase.PermissionDenied(d)
	}
	if d := domain.And(guards...); !d.Allowed {
		return usecase.FailedPrecondition(d)
	}
	op.MovePayment(order, to, note)
	return nil
}

// apply runs a payment operation and counts its denials separately from order ones.
func (uc *DefaultPaymentUsecase) apply(
	ctx context.Context,
	name string,
	actor domain.Actor,
	orderID string,
	fn func(op *usecase.Operation, order *domain.Order) error,
) (*domain.Order, error) {
	order, err := uc.Lifecycle.Apply(ctx, name, actor, orderID, fn)
	if err != nil && usecase.IsDenied(err) {
		uc.Lifecycle.Metrics.RecordPaymentDenied(name, string(actor.Role))
	}
	return order, err
}

func (uc *DefaultPaymentUsecase) GetEscrow(ctx context.Context, actor domain.Actor, orderID string) (*paymentdto.EscrowOutput, error) {
	order, err := uc.OrderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, usecase.StatusError(err)
	}
	if d := domain.CanAccessOrder(actor, order); !d.Allowed {
		return nil, usecase.PermissionDenied(d)
	}
	upfront, remaining := domain.EscrowSplit(order.TotalAmount)
	return &paymentdto.EscrowOutput{
		OrderID:         order.ID,
		PaymentState:    order.PaymentState,
		TotalAmount:     order.TotalAmount,
		UpfrontAmount:   upfront,
		RemainingAmount: remaining,
		Currency:        order.Currency,
		Funded:          domain.IsEscrowFunded(order.PaymentState),
		Terminal:        domain.IsTerminalPaymentState(order.PaymentState),
		NextStates:      domain.ValidNextPaymentStates(order.PaymentState),
	}, nil
}
