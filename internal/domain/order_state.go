package domain

import "fmt"

type OrderState string

const (
	StateDraft                OrderState = "DRAFT"
	StateSubmitted            OrderState = "SUBMITTED"
	StateManufacturerAssigned OrderState = "MANUFACTURER_ASSIGNED"
	StateSampleInProgress     OrderState = "SAMPLE_IN_PROGRESS"
	StateSampleQCUploaded     OrderState = "SAMPLE_QC_UPLOADED"
	StateSampleApproved       OrderState = "SAMPLE_APPROVED"
	StateBulkUnlocked         OrderState = "BULK_UNLOCKED"
	StateBulkInProduction     OrderState = "BULK_IN_PRODUCTION"
	StateBulkQCUploaded       OrderState = "BULK_QC_UPLOADED"
	StateReadyForDispatch     OrderState = "READY_FOR_DISPATCH"
	StateDispatched           OrderState = "DISPATCHED"
	StateDelivered            OrderState = "DELIVERED"
	StateCompleted            OrderState = "COMPLETED"
)

// orderStates lists every state in lifecycle order; the position is the state index.
var orderStates = []OrderState{
	StateDraft,
	StateSubmitted,
	StateManufacturerAssigned,
	StateSampleInProgress,
	StateSampleQCUploaded,
	StateSampleApproved,
	StateBulkUnlocked,
	StateBulkInProduction,
	StateBulkQCUploaded,
	StateReadyForDispatch,
	StateDispatched,
	StateDelivered,
	StateCompleted,
}

var validNextOrderStates = map[OrderState][]OrderState{
	StateDraft:                {StateSubmitted},
	StateSubmitted:            {StateManufacturerAssigned},
	StateManufacturerAssigned: {StateSampleInProgress, StateBulkUnlocked},
	StateSampleInProgress:     {StateSampleQCUploaded},
	StateSampleQCUploaded:     {StateSampleApproved},
	StateSampleApproved:       {StateBulkUnlocked, StateReadyForDispatch},
	StateBulkUnlocked:         {StateBulkInProduction},
	StateBulkInProduction:     {StateBulkQCUploaded},
	StateBulkQCUploaded:       {StateReadyForDispatch},
	StateReadyForDispatch:     {StateDispatched},
	StateDispatched:           {StateDelivered},
	StateDelivered:            {StateCompleted},
	StateCompleted:            {},
}

var orderStateIndex = func() map[OrderState]int {
	idx := make(map[OrderState]int, len(orderStates))
	for i, s := range orderStates {
		idx[s] = i
	}
	return idx
}()

func OrderStates() []OrderState {
	out := make([]OrderState, len(orderStates))
	copy(out, orderStates)
	return out
}

func ParseOrderState(s string) (OrderState, error) {
	state := OrderState(s)
	if _, ok := orderStateIndex[state]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownOrderState, s)
	}
	return state, nil
}

func (s OrderState) Valid() bool {
	_, ok := orderStateIndex[s]
	return ok
}

// StateIndex returns the position of s in the lifecycle, or -1 for an unknown state.
func StateIndex(s OrderState) int {
	if i, ok := orderStateIndex[s]; ok {
		return i
	}
	return -1
}

// ValidNextStates returns a copy of the successors of s in the transition table.
func ValidNextStates(s OrderState) []OrderState {
	next := validNextOrderStates[s]
	out := make([]OrderState, len(next))
	copy(out, next)
	return out
}

func CanTransition(from, to OrderState) bool {
	for _, s := range validNextOrderStates[from] {
		if s == to {
			return true
		}
	}
	return false
}

func IsTerminalState(s OrderState) bool {
	next, ok := validNextOrderStates[s]
	return ok && len(next) == 0
}

// CanTransitionForMode narrows the table to the branch the order mode takes at the
// two forks of the lifecycle.
func CanTransitionForMode(mode OrderMode, from, to OrderState) Decision {
	if !CanTransition(from, to) {
		return Deny("cannot move order from %s to %s", from, to)
	}
	switch {
	case from == StateManufacturerAssigned && to == StateBulkUnlocked && mode != ModeDirectBulk:
		return Deny("only direct bulk orders skip sampling")
	case from == StateManufacturerAssigned && to == StateSampleInProgress && mode == ModeDirectBulk:
		return Deny("direct bulk orders have no sample stage")
	case from == StateSampleApproved && to == StateBulkUnlocked && mode != ModeSampleThenBulk:
		return Deny("bulk production is not part of a %s order", mode)
	case from == StateSampleApproved && to == StateReadyForDispatch && mode != ModeSampleOnly:
		return Deny("only sample-only orders ship straight after sample approval")
	}
	return Allow()
}

// orderTransitionActors lists who may request each edge besides admin, who may request any.
var orderTransitionActors = map[OrderState]map[OrderState][]Role{
	StateDraft:                {StateSubmitted: {RoleBuyer}},
	StateManufacturerAssigned: {StateSampleInProgress: {RoleManufacturer}, StateBulkUnlocked: {RoleBuyer}},
	StateSampleInProgress:     {StateSampleQCUploaded: {RoleManufacturer}},
	StateSampleQCUploaded:     {StateSampleApproved: {RoleBuyer}},
	StateSampleApproved:       {StateBulkUnlocked: {RoleBuyer}, StateReadyForDispatch: {RoleManufacturer}},
	StateBulkUnlocked:         {StateBulkInProduction: {RoleManufacturer}},
	StateBulkInProduction:     {StateBulkQCUploaded: {RoleManufacturer}},
	StateReadyForDispatch:     {StateDispatched: {RoleManufacturer}},
	StateDispatched:           {StateDelivered: {RoleBuyer}},
	StateDelivered:            {StateCompleted: {RoleSystem}},
}

func CanActorTransitionOrder(role Role, from, to OrderState) Decision {
	if !CanTransition(from, to) {
		return Deny("cannot move order from %s to %s", from, to)
	}
	if role == RoleAdmin {
		return Allow()
	}
	for _, r := range orderTransitionActors[from][to] {
		if r == role {
			return Allow()
		}
	}
	return Deny("%s may not move an order from %s to %s", role, from, to)
}
