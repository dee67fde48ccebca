package models

import (
	"time"
)

type OrderModel struct {
	ID              string `gorm:"primaryKey;type:uuid"`
	BuyerID         string `gorm:"index:idx_buyer"`
	ManufacturerID  string `gorm:"index:idx_manufacturer"`
	OrderMode       string
	OrderState      string `gorm:"index:idx_states"`
	PaymentState    string `gorm:"index:idx_states"`
	Quantity        int
	Fabric          string
	Color           string
	DesignURL       string
	SizeBreakdown   string `gorm:"type:jsonb;default:'{}'"`
	ShippingAddress string
	SpecsLocked     bool
	TotalAmount     int64
	Currency        string

	SubmittedAt      *time.Time
	AssignedAt       *time.Time
	SampleApprovedAt *time.Time
	QCUploadedAt     *time.Time `gorm:"column:qc_uploaded_at"`
	QCApprovedAt     *time.Time `gorm:"column:qc_approved_at"`
	DispatchedAt     *time.Time
	DeliveredAt      *time.Time
	CreatedAt        time.Time `gorm:"index:idx_created_at"`
	UpdatedAt        time.Time
}

func (OrderModel) TableName() string {
	return "orders"
}
