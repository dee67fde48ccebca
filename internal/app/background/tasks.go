package background

import (
	"context"
	"time"

	"github.com/prabindersinghh/leorit-order-service/internal/usecase/order"
	"github.com/prabindersinghh/leorit-order-service/internal/usecase/payment"
	"go.uber.org/zap"
)

type BackgroundTasks struct {
	OrderUsecase        order.OrderUsecase
	PaymentUsecase      payment.PaymentUsecase
	EscrowSweepInterval time.Duration
	Log                 *zap.Logger
}

func NewBackgroundTasks(
	orderUC order.OrderUsecase,
	paymentUC payment.PaymentUsecase,
	sweepInterval time.Duration,
	log *zap.Logger,
) *BackgroundTasks {
	return &BackgroundTasks{
		OrderUsecase:        orderUC,
		PaymentUsecase:      paymentUC,
		EscrowSweepInterval: sweepInterval,
		Log:                 log,
	}
}

// Run blocks until ctx is cancelled.
func (bt *BackgroundTasks) Run(ctx context.Context) error {
	bt.startEscrowSweep(ctx)
	return nil
}

// startEscrowSweep promotes held escrow to RELEASABLE once delivery is confirmed and
// completes delivered orders whose escrow was released.
func (bt *BackgroundTasks) startEscrowSweep(ctx context.Context) {
	ticker := time.NewTicker(bt.EscrowSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			bt.sweepEscrow(ctx)
			bt.completeOrders(ctx)
		}
	}
}

func (bt *BackgroundTasks) sweepEscrow(ctx context.Context) {
	out, err := bt.PaymentUsecase.MarkReleasableOrders(ctx)
	if err != nil {
		bt.Log.Error("escrow sweep failed", zap.Error(err))
		return
	}
	if out.Promoted > 0 {
		bt.Log.Info("escrow sweep promoted orders",
			zap.Int("checked", out.Checked),
			zap.Int("promoted", out.Promoted),
		)
	}
}

func (bt *BackgroundTasks) completeOrders(ctx context.Context) {
	out, err := bt.OrderUsecase.CompleteReleasedOrders(ctx)
	if err != nil {
		bt.Log.Error("order completion failed", zap.Error(err))
		return
	}
	if out.Completed > 0 {
		bt.Log.Info("completed released orders",
			zap.Int("checked", out.Checked),
			zap.Int("completed", out.Completed),
		)
	}
}
