package models

import "time"

type OrderEventModel struct {
	ID        string `gorm:"primaryKey;type:uuid"`
	OrderID   string `gorm:"type:uuid;index"`
	ActorID   string
	ActorRole string
	Kind      string
	FromState string
	ToState   string
	Note      string
	CreatedAt time.Time
}

func (OrderEventModel) TableName() string {
	return "order_events"
}
