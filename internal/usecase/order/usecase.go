package order

import (
	"context"

	"github.com/prabindersinghh/leorit-order-service/internal/domain"
	"github.com/prabindersinghh/leorit-order-service/internal/usecase"
	orderdto "github.com/prabindersinghh/leorit-order-service/internal/usecase/dto/order"
)

type OrderUsecase interface {
	CreateOrder(ctx context.Context, actor domain.Actor, input *orderdto.CreateOrderInput) (*domain.Order, error)
	GetOrder(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error)
	ListOrders(ctx context.Context, actor domain.Actor, input *orderdto.ListOrdersInput) (*orderdto.ListOrdersOutput, error)
	GetOrderTimeline(ctx context.Context, actor domain.Actor, orderID string) ([]*domain.OrderEvent, error)
	GetNextStates(ctx context.Context, actor domain.Actor, orderID string) (*orderdto.NextStatesView, error)
	GetFieldLocks(ctx context.Context, actor domain.Actor, orderID string) (*orderdto.LockView, error)
	GetExecutionGates(ctx context.Context, actor domain.Actor, orderID string) (*domain.ExecutionGates, error)

	UpdateOrderFields(ctx context.Context, actor domain.Actor, orderID string, patch domain.OrderPatch) (*domain.Order, error)
	SubmitOrder(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error)
	AssignManufacturer(ctx context.Context, actor domain.Actor, orderID, manufacturerID string) (*domain.Order, error)
	LockSpecs(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error)
	StartSample(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error)
	UnlockBulk(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error)
	StartBulkProduction(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error)
	DispatchOrder(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error)
	ConfirmDelivery(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error)
	CompleteOrder(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error)
	TransitionOrder(ctx context.Context, actor domain.Actor, orderID string, to domain.OrderState) (*domain.Order, error)

	CompleteReleasedOrders(ctx context.Context) (*orderdto.CompletionOutput, error)
}

type DefaultOrderUsecase struct {
	OrderRepo domain.OrderRepository
	QCRepo    domain.QCRepository
	EventRepo domain.OrderEventRepository
	Lifecycle *usecase.Lifecycle
}

func NewDefaultOrderUsecase(
	orderRepo domain.OrderRepository,
	qcRepo domain.QCRepository,
	eventRepo domain.OrderEventRepository,
	lifecycle *usecase.Lifecycle,
) *DefaultOrderUsecase {
	return &DefaultOrderUsecase{
		OrderRepo: orderRepo,
		QCRepo:    qcRepo,
		EventRepo: eventRepo,
		Lifecycle: lifecycle,
	}
}

// move checks an order transition against the table, the order mode and the
// actor, then the operation's own guards, and applies it.
func move(op *usecase.Operation, order *domain.Order, to domain.OrderState, note string, guards ...domain.Decision) error {
	if d := domain.CanTransitionForMode(order.Mode, order.State, to); !d.Allowed {
		return usecase.FailedPrecondition(d)
	}
	if d := domain.CanActorTransitionOrder(op.Actor.Role, order.State, to); !d.Allowed {
		return usecase.PermissionDenied(d)
	}
	if d := domain.And(guards...); !d.Allowed {
		return usecase.FailedPrecondition(d)
	}
	op.MoveOrder(order, to, note)
	return nil
}
