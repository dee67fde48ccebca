package qc

import (
	"context"

	"github.com/prabindersinghh/leorit-order-service/internal/domain"
	"github.com/prabindersinghh/leorit-order-service/internal/usecase"
	qcdto "github.com/prabindersinghh/leorit-order-service/internal/usecase/dto/qc"
)

type QCUsecase interface {
	UploadQC(ctx context.Context, actor domain.Actor, input *qcdto.UploadQCInput) (*domain.QCRecord, error)
	ApproveQC(ctx context.Context, actor domain.Actor, qcID string) (*domain.QCRecord, error)
	RejectQC(ctx context.Context, actor domain.Actor, qcID, reason string) (*domain.QCRecord, error)
	RequestRevision(ctx context.Context, actor domain.Actor, qcID, reason string) (*domain.QCRecord, error)
	ListQC(ctx context.Context, actor domain.Actor, orderID string) ([]*domain.QCRecord, error)
}

type DefaultQCUsecase struct {
	OrderRepo domain.OrderRepository
	QCRepo    domain.QCRepository
	Lifecycle *usecase.Lifecycle
}

func NewDefaultQCUsecase(
	orderRepo domain.OrderRepository,
	qcRepo domain.QCRepository,
	lifecycle *usecase.Lifecycle,
) *DefaultQCUsecase {
	return &DefaultQCUsecase{
		OrderRepo: orderRepo,
		QCRepo:    qcRepo,
		Lifecycle: lifecycle,
	}
}

func (uc *DefaultQCUsecase) ListQC(ctx context.Context, actor domain.Actor, orderID string) ([]*domain.QCRecord, error) {
	order, err := uc.OrderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, usecase.StatusError(err)
	}
	if d := domain.CanAccessOrder(actor, order); !d.Allowed {
		return nil, usecase.PermissionDenied(d)
	}
	records, err := uc.QCRepo.ListQCRecords(ctx, orderID)
	if err != nil {
		return nil, usecase.StatusError(err)
	}
	return records, nil
}
