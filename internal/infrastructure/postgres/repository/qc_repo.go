package repository

import (
	"context"
	"errors"

	"github.com/prabindersinghh/leorit-order-service/internal/domain"
	"github.com/prabindersinghh/leorit-order-service/internal/infrastructure/postgres/mappers"
	"github.com/prabindersinghh/leorit-order-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultQCRepository struct {
	DB *gorm.DB
}

func NewDefaultQCRepository(db *gorm.DB) *DefaultQCRepository {
	return &DefaultQCRepository{DB: db}
}

func (r *DefaultQCRepository) GetQCRecord(ctx context.Context, qcID string) (*domain.QCRecord, error) {
	var model models.OrderQCModel
	if err := r.DB.WithContext(ctx).First(&model, "id = ?", qcID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrQCRecordNotFound
		}
		return nil, err
	}
	return mappers.ToDomainQCRecord(&model), nil
}

func (r *DefaultQCRepository) ListQCRecords(ctx context.Context, orderID string) ([]*domain.QCRecord, error) {
	var qcModels []models.OrderQCModel
	if err := r.DB.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at ASC").
		Find(&qcModels).Error; err != nil {
		return nil, err
	}
	records := make([]*domain.QCRecord, len(qcModels))
	for i := range qcModels {
		records[i] = mappers.ToDomainQCRecord(&qcModels[i])
	}
	return records, nil
}

func (r *DefaultQCRepository) LatestQCRecord(ctx context.Context, orderID string, stage domain.QCStage) (*domain.QCRecord, error) {
	return latestQCRecord(r.DB.WithContext(ctx), orderID, stage)
}

// latestQCRecord returns nil without error when the order has no record for the stage.
func latestQCRecord(db *gorm.DB, orderID string, stage domain.QCStage) (*domain.QCRecord, error) {
	var qcModels []models.OrderQCModel
	if err := db.
		Where("order_id = ? AND stage = ?", orderID, string(stage)).
		Order("created_at DESC").
		Limit(1).
		Find(&qcModels).Error; err != nil {
		return nil, err
	}
	if len(qcModels) == 0 {
		return nil, nil
	}
	return mappers.ToDomainQCRecord(&qcModels[0]), nil
}
