package payment

import (
	"context"

	"github.com/prabindersinghh/leorit-order-service/internal/domain"
	"github.com/prabindersinghh/leorit-order-service/internal/usecase"
)

func canFundEscrow(order *domain.Order) domain.Decision {
	if order.State == domain.StateDraft {
		return domain.Deny("order must be submitted before escrow is funded")
	}
	if order.TotalAmount <= 0 {
		return domain.Deny("order total must be positive")
	}
	return domain.Allow()
}

// FundEscrow records the buyer's payment into escrow.
func (uc *DefaultPaymentUsecase) FundEscrow(ctx context.Context, actor domain.Actor, orderID string) (*domain.Order, error) {
	return uc.apply(ctx, "fund_escrow", actor, orderID, func(op *usecase.Operation, order *domain.Order) error {
		return movePayment(op, order, domain.PaymentHeld, "escrow funded", canFundEscrow(order))
	})
}
