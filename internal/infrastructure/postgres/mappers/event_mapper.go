package mappers

import (
	"github.com/prabindersinghh/leorit-order-service/internal/domain"
	"github.com/prabindersinghh/leorit-order-service/internal/infrastructure/postgres/models"
)

func ToDomainOrderEvent(model *models.OrderEventModel) *domain.OrderEvent {
	return &domain.OrderEvent{
		ID:        model.ID,
		OrderID:   model.OrderID,
		ActorID:   model.ActorID,
		ActorRole: domain.Role(model.ActorRole),
		Kind:      domain.EventKind(model.Kind),
		From:      model.FromState,
		To:        model.ToState,
		Note:      model.Note,
		CreatedAt: model.CreatedAt,
	}
}

func ToGORMOrderEvent(event *domain.OrderEvent) *models.OrderEventModel {
	return &models.OrderEventModel{
		ID:        event.ID,
		OrderID:   event.OrderID,
		ActorID:   event.ActorID,
		ActorRole: string(event.ActorRole),
		Kind:      string(event.Kind),
		FromState: event.From,
		ToState:   event.To,
		Note:      event.Note,
		CreatedAt: event.CreatedAt,
	}
}
