package payment

import (
	"context"
	"strings"

	"github.com/prabindersinghh/leorit-order-service/internal/domain"
	"github.com/prabindersinghh/leorit-order-service/internal/usecase"
)

func (uc *DefaultPaymentUsecase) RefundPayment(ctx context.Context, actor domain.Actor, orderID, reason string) (*domain.Order, error) {
	note := "escrow refunded"
	if r := strings.TrimSpace(reason); r != "" {
		note += ": " + r
	}
	return uc.apply(ctx, "refund_payment", actor, orderID, func(op *usecase.Operation, order *domain.Order) error {
		if d := domain.CanRefundPayment(order); !d.Allowed {
			return usecase.FailedPrecondition(d)
		}
		return movePayment(op, order, domain.PaymentRefunded, note)
	})
}
