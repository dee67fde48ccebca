package domain

type Role string

const (
	RoleBuyer        Role = "buyer"
	RoleManufacturer Role = "manufacturer"
	RoleAdmin        Role = "admin"
	// RoleSystem is used by background jobs.
	RoleSystem Role = "system"
)

func (r Role) Valid() bool {
	switch r {
	case RoleBuyer, RoleManufacturer, RoleAdmin, RoleSystem:
		return true
	}
	return false
}

type Actor struct {
	ID   string
	Role Role
}

var SystemActor = Actor{ID: "system", Role: RoleSystem}

// CanAccessOrder checks that the actor is a party to the order.
func CanAccessOrder(a Actor, o *Order) Decision {
	switch a.Role {
	case RoleAdmin, RoleSystem:
		return Allow()
	case RoleBuyer:
		if a.ID != "" && a.ID == o.BuyerID {
			return Allow()
		}
		return Deny("order belongs to another buyer")
	case RoleManufacturer:
		if a.ID != "" && a.ID == o.ManufacturerID {
			return Allow()
		}
		return Deny("order is not assigned to this manufacturer")
	}
	return Deny("unknown role %q", a.Role)
}
