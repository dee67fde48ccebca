package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/prabindersinghh/leorit-order-service/internal/domain"
	"github.com/prabindersinghh/leorit-order-service/internal/infrastructure/metrics"
	"go.uber.org/zap"
)

const publishTimeout = 5 * time.Second

// Lifecycle runs guarded order operations: lock, check, mutate, record the
// audit trail, commit, then publish.
type Lifecycle struct {
	Repo      domain.OrderRepository
	Publisher domain.EventPublisher
	Metrics   *metrics.OrderMetrics
	Log       *zap.Logger
	Now       func() time.Time
}

func NewLifecycle(
	repo domain.OrderRepository,
	publisher domain.EventPublisher,
	orderMetrics *metrics.OrderMetrics,
	log *zap.Logger,
) *Lifecycle {
	if log == nil {
		log = zap.NewNop()
	}
	return &Lifecycle{
		Repo:      repo,
		Publisher: publisher,
		Metrics:   orderMetrics,
		Log:       log,
		Now:       func() time.Time { return time.Now().UTC() },
	}
}

// Operation is the transaction handle given to an operation body. Events
// recorded through it are written with the order and published after commit.
type Operation struct {
	domain.OrderTx
	Actor  domain.Actor
	At     time.Time
	events []*domain.OrderEvent
}

func (op *Operation) Record(kind domain.EventKind, from, to, note string) {
	event := &domain.OrderEvent{
		ID:        uuid.NewString(),
		ActorID:   op.Actor.ID,
		ActorRole: op.Actor.Role,
		Kind:      kind,
		From:      from,
		To:        to,
		Note:      note,
		CreatedAt: op.At,
	}
	op.events = append(op.events, event)
}

// MoveOrder applies a state change and records it.
func (op *Operation) MoveOrder(order *domain.Order, to domain.OrderState, note string) {
	from := order.State
	order.MoveTo(to, op.At)
	op.Record(domain.EventOrderState, string(from), string(to), note)
}

// MovePayment applies an escrow state change and records it.
func (op *Operation) MovePayment(order *domain.Order, to domain.PaymentState, note string) {
	from := order.PaymentState
	order.PaymentState = to
	order.UpdatedAt = op.At
	op.Record(domain.EventPaymentState, string(from), string(to), note)
}

// Apply runs fn against the locked order. fn returns status errors for guard
// failures; any error rolls the whole operation back.
func (l *Lifecycle) Apply(
	ctx context.Context,
	name string,
	actor domain.Actor,
	orderID string,
	fn func(op *Operation, order *domain.Order) error,
) (*domain.Order, error) {
	start := time.Now()
	defer l.Metrics.ObserveOperation(name, start)

	var op *Operation
	order, err := l.Repo.ProcessOrderOperation(ctx, orderID, func(tx domain.OrderTx, order *domain.Order) error {
		op = &Operation{OrderTx: tx, Actor: actor, At: l.Now()}
		if d := domain.CanAccessOrder(actor, order); !d.Allowed {
			return PermissionDenied(d)
		}
		if err := fn(op, order); err != nil {
			return err
		}
		for _, event := range op.events {
			event.OrderID = order.ID
			if err := tx.AppendEvent(event); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		l.observeFailure(name, actor, orderID, err)
		return nil, StatusError(err)
	}

	for _, event := range op.events {
		l.observeEvent(event)
	}
	l.Publish(ctx, order, op.events...)
	return order, nil
}

func (l *Lifecycle) observeFailure(name string, actor domain.Actor, orderID string, err error) {
	if IsDenied(err) {
		l.Metrics.RecordDenied(name, string(actor.Role))
		l.Log.Info("order operation denied",
			zap.String("operation", name),
			zap.String("order_id", orderID),
			zap.String("actor_id", actor.ID),
			zap.String("actor_role", string(actor.Role)),
			zap.Error(err),
		)
		return
	}
	l.Metrics.RecordError(name)
	l.Log.Error("order operation failed",
		zap.String("operation", name),
		zap.String("order_id", orderID),
		zap.Error(err),
	)
}

func (l *Lifecycle) observeEvent(event *domain.OrderEvent) {
	switch event.Kind {
	case domain.EventOrderState:
		l.Metrics.RecordTransition(event.From, event.To, string(event.ActorRole))
	case domain.EventPaymentState:
		l.Metrics.RecordPaymentTransition(event.From, event.To, string(event.ActorRole))
	}
}

// Publish sends events to the bus. The order is already committed, so failures
// are logged and not returned.
func (l *Lifecycle) Publish(ctx context.Context, order *domain.Order, events ...*domain.OrderEvent) {
	if l.Publisher == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	for _, event := range events {
		if err := l.Publisher.PublishOrderEvent(ctx, order, event); err != nil {
			l.Log.Warn("failed to publish order event",
				zap.String("order_id", order.ID),
				zap.String("kind", string(event.Kind)),
				zap.Error(err),
			)
		}
	}
}
