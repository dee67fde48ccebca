package domain

import (
	"fmt"
	"time"
)

type OrderMode string

const (
	ModeSampleOnly     OrderMode = "sample_only"
	ModeSampleThenBulk OrderMode = "sample_then_bulk"
	ModeDirectBulk     OrderMode = "direct_bulk"
)

func ParseOrderMode(s string) (OrderMode, error) {
	switch mode := OrderMode(s); mode {
	case ModeSampleOnly, ModeSampleThenBulk, ModeDirectBulk:
		return mode, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownOrderMode, s)
}

// HasSampleStage reports whether the order goes through sample production.
func (m OrderMode) HasSampleStage() bool {
	return m == ModeSampleOnly || m == ModeSampleThenBulk
}

// HasBulkStage reports whether the order goes through bulk production.
func (m OrderMode) HasBulkStage() bool {
	return m == ModeSampleThenBulk || m == ModeDirectBulk
}

type Order struct {
	ID              string
	BuyerID         string
	ManufacturerID  string
	Mode            OrderMode
	State           OrderState
	PaymentState    PaymentState
	Quantity        int
	Fabric          string
	Color           string
	DesignURL       string
	SizeBreakdown   string
	ShippingAddress string
	SpecsLocked     bool
	TotalAmount     int64
	Currency        string

	SubmittedAt      *time.Time
	AssignedAt       *time.Time
	SampleApprovedAt *time.Time
	QCUploadedAt     *time.Time
	QCApprovedAt     *time.Time
	DispatchedAt     *time.Time
	DeliveredAt      *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// stamp sets a lifecycle milestone that is recorded only once.
func stamp(field **time.Time, at time.Time) {
	if *field == nil {
		t := at
		*field = &t
	}
}

// MoveTo records the new state together with the milestone timestamp it implies.
// It does not validate the transition; callers run the guards first.
func (o *Order) MoveTo(to OrderState, at time.Time) {
	switch to {
	case StateSubmitted:
		stamp(&o.SubmittedAt, at)
	case StateManufacturerAssigned:
		stamp(&o.AssignedAt, at)
	case StateSampleApproved:
		stamp(&o.SampleApprovedAt, at)
	case StateDispatched:
		stamp(&o.DispatchedAt, at)
	case StateDelivered:
		stamp(&o.DeliveredAt, at)
	}
	o.State = to
	o.UpdatedAt = at
}

// CanSubmit checks the draft carries what a manufacturer needs to quote and produce.
func CanSubmit(o *Order) Decision {
	switch {
	case o.State != StateDraft:
		return Deny("only draft orders can be submitted")
	case o.Quantity <= 0:
		return Deny("quantity must be positive")
	case o.TotalAmount <= 0:
		return Deny("order total must be positive")
	case o.Fabric == "" || o.Color == "":
		return Deny("fabric and color are required")
	case o.DesignURL == "":
		return Deny("a design file is required")
	}
	return Allow()
}

func CanAssignManufacturer(o *Order, manufacturerID string) Decision {
	switch {
	case o.State != StateSubmitted:
		return Deny("manufacturer can only be assigned to submitted orders")
	case manufacturerID == "":
		return Deny("manufacturer id is required")
	}
	return Allow()
}

func CanLockSpecs(o *Order) Decision {
	switch {
	case o.SpecsLocked:
		return Deny("specifications are already locked")
	case o.State != StateManufacturerAssigned:
		return Deny("specifications are locked once a manufacturer is assigned and before production")
	}
	return Allow()
}

func CanConfirmDelivery(o *Order) Decision {
	switch {
	case o.State != StateDispatched:
		return Deny("only dispatched orders can be confirmed as delivered")
	case o.DispatchedAt == nil:
		return Deny("dispatch time is not recorded")
	}
	return Allow()
}

func CanComplete(o *Order) Decision {
	switch {
	case o.State != StateDelivered:
		return Deny("only delivered orders can be completed")
	case o.PaymentState != PaymentReleased:
		return Deny("payment must be released before the order is completed")
	}
	return Allow()
}
