package orderdto

import "github.com/prabindersinghh/leorit-order-service/internal/domain"

type ListOrdersOutput struct {
	Orders []*domain.Order
	Total  int64
	Page   int
	Limit  int
}

// LockView lists the field lock status of an order in its current state.
type LockView struct {
	State        domain.OrderState `json:"state"`
	LockedFields []string          `json:"locked_fields"`
	Locks        map[string]bool   `json:"locks"`
}

type NextStatesView struct {
	State      domain.OrderState   `json:"state"`
	NextStates []domain.OrderState `json:"next_states"`
	Terminal   bool                `json:"terminal"`
}

type CompletionOutput struct {
	Checked   int
	Completed int
}
