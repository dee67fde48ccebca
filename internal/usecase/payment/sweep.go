package payment

import (
	"context"

	"github.com/prabindersinghh/leorit-order-service/internal/domain"
	"github.com/prabindersinghh/leorit-order-service/internal/usecase"
	paymentdto "github.com/prabindersinghh/leorit-order-service/internal/usecase/dto/payment"
	"go.uber.org/zap"
)

const sweepPageSize = 100

// MarkReleasableOrders promotes held escrows whose release conditions are met. It
// collects candidates first so promotions do not shift the pages being read.
func (uc *DefaultPaymentUsecase) MarkReleasableOrders(ctx context.Context) (*paymentdto.SweepOutput, error) {
	var candidates []string
	out := &paymentdto.SweepOutput{}
	for page := 1; ; page++ {
		orders, total, err := uc.OrderRepo.ListOrders(ctx, domain.OrderFilter{
			PaymentStates: []domain.PaymentState{domain.PaymentHeld},
			Page:          page,
			Limit:         sweepPageSize,
		})
		if err != nil {
			return nil, usecase.StatusError(err)
		}
		for _, order := range orders {
			out.Checked++
			if domain.CanMarkPaymentReleasable(order).Allowed {
				candidates = append(candidates, order.ID)
			}
		}
		if len(orders) == 0 || int64(page*sweepPageSize) >= total {
			break
		}
	}

	for _, orderID := range candidates {
		if ctx.Err() != nil {
			return out, ctx.Err()
		}
		if _, err := uc.MarkReleasable(ctx, domain.SystemActor, orderID); err != nil {
			uc.Lifecycle.Log.Warn("escrow sweep skipped order", zap.String("order_id", orderID), zap.Error(err))
			continue
		}
		out.Promoted++
	}
	return out, nil
}
