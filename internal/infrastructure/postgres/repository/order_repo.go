package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/prabindersinghh/leorit-order-service/internal/domain"
	"github.com/prabindersinghh/leorit-order-service/internal/infrastructure/postgres/mappers"
	"github.com/prabindersinghh/leorit-order-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

func (r *DefaultOrderRepository) CreateOrder(ctx context.Context, order *domain.Order, event *domain.OrderEvent) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(mappers.ToGORMOrder(order)).Error; err != nil {
			return fmt.Errorf("create order: %w", err)
		}
		if event == nil {
			return nil
		}
		if err := tx.Create(mappers.ToGORMOrderEvent(event)).Error; err != nil {
			return fmt.Errorf("append order event: %w", err)
		}
		return nil
	})
}

func (r *DefaultOrderRepository) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	var order models.OrderModel
	if err := r.DB.WithContext(ctx).First(&order, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return mappers.ToDomainOrder(&order), nil
}

func (r *DefaultOrderRepository) ListOrders(ctx context.Context, filter domain.OrderFilter) ([]*domain.Order, int64, error) {
	query := r.DB.WithContext(ctx).Model(&models.OrderModel{})

	if filter.BuyerID != "" {
		query = query.Where("buyer_id = ?", filter.BuyerID)
	}
	if filter.ManufacturerID != "" {
		query = query.Where("manufacturer_id = ?", filter.ManufacturerID)
	}
	if len(filter.States) > 0 {
		query = query.Where("order_state IN (?)", filter.States)
	}
	if len(filter.PaymentStates) > 0 {
		query = query.Where("payment_state IN (?)", filter.PaymentStates)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count failed: %w", err)
	}

	if filter.Limit > 0 {
		page := filter.Page
		if page < 1 {
			page = 1
		}
		query = query.Offset((page - 1) * filter.Limit).Limit(filter.Limit)
	}

	var orderModels []models.OrderModel
	if err := query.Order("created_at DESC").Find(&orderModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to find orders: %w", err)
	}

	orders := make([]*domain.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModels[i])
	}
	return orders, total, nil
}

func (r *DefaultOrderRepository) ProcessOrderOperation(
	ctx context.Context,
	orderID string,
	fn func(tx domain.OrderTx, order *domain.Order) error,
) (*domain.Order, error) {
	var result *domain.Order
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model models.OrderModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&model, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrOrderNotFound
			}
			return fmt.Errorf("lock order: %w", err)
		}

		order := mappers.ToDomainOrder(&model)
		if err := fn(&orderTx{db: tx, orderID: orderID}, order); err != nil {
			return err
		}

		if err := tx.Save(mappers.ToGORMOrder(order)).Error; err != nil {
			return fmt.Errorf("save order: %w", err)
		}
		result = order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// orderTx scopes QC and event writes to the transaction holding the order lock.
type orderTx struct {
	db      *gorm.DB
	orderID string
}

func (t *orderTx) LatestQCRecord(stage domain.QCStage) (*domain.QCRecord, error) {
	return latestQCRecord(t.db, t.orderID, stage)
}

func (t *orderTx) GetQCRecord(qcID string) (*domain.QCRecord, error) {
	var model models.OrderQCModel
	if err := t.db.First(&model, "id = ? AND order_id = ?", qcID, t.orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrQCRecordNotFound
		}
		return nil, err
	}
	return mappers.ToDomainQCRecord(&model), nil
}

func (t *orderTx) SaveQCRecord(rec *domain.QCRecord) error {
	return t.db.Omit(clause.Associations).Save(mappers.ToGORMQCRecord(rec)).Error
}

func (t *orderTx) AppendEvent(event *domain.OrderEvent) error {
	return t.db.Create(mappers.ToGORMOrderEvent(event)).Error
}
