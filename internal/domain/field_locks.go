package domain

import "sort"

const (
	FieldQuantity        = "quantity"
	FieldOrderMode       = "order_mode"
	FieldDesignURL       = "design_url"
	FieldTotalAmount     = "total_amount"
	FieldFabric          = "fabric"
	FieldColor           = "color"
	FieldSizeBreakdown   = "size_breakdown"
	FieldShippingAddress = "shipping_address"
)

// fieldLocks maps a field to the state from which it becomes read-only.
var fieldLocks = map[string]OrderState{
	FieldQuantity:        StateSubmitted,
	FieldOrderMode:       StateSubmitted,
	FieldDesignURL:       StateSubmitted,
	FieldTotalAmount:     StateSubmitted,
	FieldFabric:          StateSampleApproved,
	FieldColor:           StateSampleApproved,
	FieldSizeBreakdown:   StateBulkUnlocked,
	FieldShippingAddress: StateDispatched,
}

// FieldLockState returns the state a field locks at. ok is false for fields the
// policy does not govern.
func FieldLockState(field string) (state OrderState, ok bool) {
	state, ok = fieldLocks[field]
	return state, ok
}

// LockableFields returns every field the lock policy governs.
func LockableFields() []string {
	fields := make([]string, 0, len(fieldLocks))
	for field := range fieldLocks {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

func IsFieldLocked(field string, current OrderState) bool {
	lockAt, ok := fieldLocks[field]
	if !ok {
		return false
	}
	idx := StateIndex(current)
	return idx >= 0 && idx >= StateIndex(lockAt)
}

// LockedFields returns the governed fields that are read-only in the given state.
func LockedFields(current OrderState) []string {
	locked := []string{}
	for field := range fieldLocks {
		if IsFieldLocked(field, current) {
			locked = append(locked, field)
		}
	}
	sort.Strings(locked)
	return locked
}

func CheckFieldUpdates(current OrderState, fields []string) Decision {
	for _, field := range fields {
		if IsFieldLocked(field, current) {
			lockAt := fieldLocks[field]
			return Deny("%s is locked from %s onwards", field, lockAt)
		}
	}
	return Allow()
}

// OrderPatch carries the editable order fields; nil means unchanged.
type OrderPatch struct {
	Quantity        *int
	Mode            *OrderMode
	DesignURL       *string
	TotalAmount     *int64
	Fabric          *string
	Color           *string
	SizeBreakdown   *string
	ShippingAddress *string
}

func (p OrderPatch) Fields() []string {
	var fields []string
	if p.Quantity != nil {
		fields = append(fields, FieldQuantity)
	}
	if p.Mode != nil {
		fields = append(fields, FieldOrderMode)
	}
	if p.DesignURL != nil {
		fields = append(fields, FieldDesignURL)
	}
	if p.TotalAmount != nil {
		fields = append(fields, FieldTotalAmount)
	}
	if p.Fabric != nil {
		fields = append(fields, FieldFabric)
	}
	if p.Color != nil {
		fields = append(fields, FieldColor)
	}
	if p.SizeBreakdown != nil {
		fields = append(fields, FieldSizeBreakdown)
	}
	if p.ShippingAddress != nil {
		fields = append(fields, FieldShippingAddress)
	}
	return fields
}

func (p OrderPatch) Apply(o *Order) {
	if p.Quantity != nil {
		o.Quantity = *p.Quantity
	}
	if p.Mode != nil {
		o.Mode = *p.Mode
	}
	if p.DesignURL != nil {
		o.DesignURL = *p.DesignURL
	}
	if p.TotalAmount != nil {
		o.TotalAmount = *p.TotalAmount
	}
	if p.Fabric != nil {
		o.Fabric = *p.Fabric
	}
	if p.Color != nil {
		o.Color = *p.Color
	}
	if p.SizeBreakdown != nil {
		o.SizeBreakdown = *p.SizeBreakdown
	}
	if p.ShippingAddress != nil {
		o.ShippingAddress = *p.ShippingAddress
	}
}

// CanEditOrder combines the party check and the field lock policy.
func CanEditOrder(actor Actor, o *Order, p OrderPatch) Decision {
	if actor.Role != RoleBuyer && actor.Role != RoleAdmin {
		return Deny("only the buyer or admin can edit an order")
	}
	fields := p.Fields()
	if len(fields) == 0 {
		return Deny("nothing to update")
	}
	if p.Quantity != nil && *p.Quantity <= 0 {
		return Deny("quantity must be positive")
	}
	if p.TotalAmount != nil && *p.TotalAmount <= 0 {
		return Deny("order total must be positive")
	}
	if p.Mode != nil {
		if _, err := ParseOrderMode(string(*p.Mode)); err != nil {
			return Deny("%s", err.Error())
		}
	}
	return And(CanAccessOrder(actor, o), CheckFieldUpdates(o.State, fields))
}
