package repository

import (
	"context"

	"github.com/prabindersinghh/leorit-order-service/internal/domain"
	"github.com/prabindersinghh/leorit-order-service/internal/infrastructure/postgres/mappers"
	"github.com/prabindersinghh/leorit-order-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultOrderEventRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderEventRepository(db *gorm.DB) *DefaultOrderEventRepository {
	return &DefaultOrderEventRepository{DB: db}
}

func (r *DefaultOrderEventRepository) ListOrderEvents(ctx context.Context, orderID string) ([]*domain.OrderEvent, error) {
	var eventModels []models.OrderEventModel
	if err := r.DB.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&eventModels).Error; err != nil {
		return nil, err
	}
	events := make([]*domain.OrderEvent, len(eventModels))
	for i := range eventModels {
		events[i] = mappers.ToDomainOrderEvent(&eventModels[i])
	}
	return events, nil
}
