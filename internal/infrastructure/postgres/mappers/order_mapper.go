package mappers

import (
	"github.com/prabindersinghh/leorit-order-service/internal/domain"
	"github.com/prabindersinghh/leorit-order-service/internal/infrastructure/postgres/models"
)

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	return &domain.Order{
		ID:               model.ID,
		BuyerID:          model.BuyerID,
		ManufacturerID:   model.ManufacturerID,
		Mode:             domain.OrderMode(model.OrderMode),
		State:            domain.OrderState(model.OrderState),
		PaymentState:     domain.PaymentState(model.PaymentState),
		Quantity:         model.Quantity,
		Fabric:           model.Fabric,
		Color:            model.Color,
		DesignURL:        model.DesignURL,
		SizeBreakdown:    model.SizeBreakdown,
		ShippingAddress:  model.ShippingAddress,
		SpecsLocked:      model.SpecsLocked,
		TotalAmount:      model.TotalAmount,
		Currency:         model.Currency,
		SubmittedAt:      model.SubmittedAt,
		AssignedAt:       model.AssignedAt,
		SampleApprovedAt: model.SampleApprovedAt,
		QCUploadedAt:     model.QCUploadedAt,
		QCApprovedAt:     model.QCApprovedAt,
		DispatchedAt:     model.DispatchedAt,
		DeliveredAt:      model.DeliveredAt,
		CreatedAt:        model.CreatedAt,
		UpdatedAt:        model.UpdatedAt,
	}
}

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	sizeBreakdown := order.SizeBreakdown
	if sizeBreakdown == "" {
		sizeBreakdown = "{}"
	}
	return &models.OrderModel{
		ID:               order.ID,
		BuyerID:          order.BuyerID,
		ManufacturerID:   order.ManufacturerID,
		OrderMode:        string(order.Mode),
		OrderState:       string(order.State),
		PaymentState:     string(order.PaymentState),
		Quantity:         order.Quantity,
		Fabric:           order.Fabric,
		Color:            order.Color,
		DesignURL:        order.DesignURL,
		SizeBreakdown:    sizeBreakdown,
		ShippingAddress:  order.ShippingAddress,
		SpecsLocked:      order.SpecsLocked,
		TotalAmount:      order.TotalAmount,
		Currency:         order.Currency,
		SubmittedAt:      order.SubmittedAt,
		AssignedAt:       order.AssignedAt,
		SampleApprovedAt: order.SampleApprovedAt,
		QCUploadedAt:     order.QCUploadedAt,
		QCApprovedAt:     order.QCApprovedAt,
		DispatchedAt:     order.DispatchedAt,
		DeliveredAt:      order.DeliveredAt,
		CreatedAt:        order.CreatedAt,
		UpdatedAt:        order.UpdatedAt,
	}
}
