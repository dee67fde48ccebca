package payment

import (
	"context"

	"github.com/prabindersinghh/leorit-order-service/internal/domain"
	"github.com/prabindersinghh/leorit-order-service/internal/usecase"
	"go.uber.org/zap"
)

func (uc *DefaultPaymentUsecase) MarkReleasable(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error) {
	return uc.apply(ctx, "mark_releasable", actor, orderID, func(op *usecase.Operation, order *domain.Order) error {
		return movePayment(op, order, domain.PaymentReleasable, "escrow releasable", domain.CanMarkPaymentReleasable(order))
	})
}

// ReleasePayment pays the escrow out to the manufacturer.
func (uc *DefaultPaymentUsecase) ReleasePayment(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error) {
	order, err := uc.apply(ctx, "release_payment", actor, orderID, func(op *usecase.Operation, order *domain.Order) error {
		qc, err := op.LatestQCRecord(domain.DeliveryQCStage(order.Mode))
		if err != nil {
			return err
		}
		return movePayment(op, order, domain.PaymentReleased, "escrow released", domain.CanReleasePayment(order, qc))
	})
	if err != nil {
		return nil, err
	}
	uc.Lifecycle.Metrics.RecordEscrowReleased(order.Currency, order.TotalAmount)
	uc.Lifecycle.Log.Info("escrow released",
		zap.String("order_id", order.ID),
		zap.Int64("amount", order.TotalAmount),
		zap.String("currency", order.Currency),
	)
	return order, nil
}
