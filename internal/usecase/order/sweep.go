package order

import (
	"context"

	"github.com/prabindersinghh/leorit-order-service/internal/domain"
	"github.com/prabindersinghh/leorit-order-service/internal/usecase"
	orderdto "github.com/prabindersinghh/leorit-order-service/internal/usecase/dto/order"
	"go.uber.org/zap"
)

const sweepPageSize = 100

// CompleteReleasedOrders closes delivered orders whose escrow has been paid out.
func (uc *DefaultOrderUsecase) CompleteReleasedOrders(ctx context.Context) (*orderdto.CompletionOutput, error) {
	var candidates []string
	out := &orderdto.CompletionOutput{}
	for page := 1; ; page++ {
		orders, total, err := uc.OrderRepo.ListOrders(ctx, domain.OrderFilter{
			States:        []domain.OrderState{domain.StateDelivered},
			PaymentStates: []domain.PaymentState{domain.PaymentReleased},
			Page:          page,
			Limit:         sweepPageSize,
		})
		if err != nil {
			return nil, usecase.StatusError(err)
		}
		for _, order := range orders {
			out.Checked++
			if domain.CanComplete(order).Allowed {
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
		if _, err := uc.CompleteOrder(ctx, domain.SystemActor, orderID); err != nil {
			uc.Lifecycle.Log.Warn("order completion skipped order", zap.String("order_id", orderID), zap.Error(err))
			continue
		}
		out.Completed++
	}
	return out, nil
}
