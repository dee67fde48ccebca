package setup

import (
	"github.com/prabindersinghh/leorit-order-service/internal/usecase"
	"github.com/prabindersinghh/leorit-order-service/internal/usecase/order"
	"github.com/prabindersinghh/leorit-order-service/internal/usecase/payment"
	"github.com/prabindersinghh/leorit-order-service/internal/usecase/qc"
)

type UseCases struct {
	OrderUsecase   order.OrderUsecase
	QCUsecase      qc.QCUsecase
	PaymentUsecase payment.PaymentUsecase
}

func InitializeUseCases(deps *Dependencies) *UseCases {
	repos := deps.Repositories
	lifecycle := usecase.NewLifecycle(repos.OrderRepo, deps.Publisher, deps.Metrics, deps.Log)

	return &UseCases{
		OrderUsecase:   order.NewDefaultOrderUsecase(repos.OrderRepo, repos.QCRepo, repos.EventRepo, lifecycle),
		QCUsecase:      qc.NewDefaultQCUsecase(repos.OrderRepo, repos.QCRepo, lifecycle),
		PaymentUsecase: payment.NewDefaultPaymentUsecase(repos.OrderRepo, lifecycle),
	}
}
