package models

import (
	"time"

	"github.com/lib/pq"
)

type OrderQCModel struct {
	ID             string `gorm:"primaryKey"`
	OrderID        string `gorm:"type:uuid;index:idx_order_stage"`
	Stage          string `gorm:"index:idx_order_stage"`
	Status         string
	VideoURL       string
	PhotoURLs      pq.StringArray `gorm:"type:text[];not null;default:'{}'"`
	DefectNotes    string
	DefectCount    int
	UploadedBy     string
	DecidedBy      string
	DecidedByRole  string
	DecisionReason string
	AdminDecision  string
	DecidedAt      *time.Time
	CreatedAt      time.Time  `gorm:"index:idx_order_stage"`
	Order          OrderModel `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
}

func (OrderQCModel) TableName() string {
	return "order_qc"
}
