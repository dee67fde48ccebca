package domain

import (
	"errors"
	"testing"
)

func TestCanTransitionMatchesTable(t *testing.T) {
	for _, from := range OrderStates() {
		next := ValidNextStates(from)
		allowed := make(map[OrderState]bool, len(next))
		for _, s := range next {
			if !s.Valid() {
				t.Fatalf("%s lists unknown successor %s", from, s)
			}
			allowed[s] = true
		}
		for _, to := range OrderStates() {
			if got := CanTransition(from, to); got != allowed[to] {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", from, to, got, allowed[to])
			}
		}
	}
}

func TestCanTransitionExamples(t *testing.T) {
	tests := []struct {
		from, to OrderState
		want     bool
	}{
		{StateSubmitted, StateManufacturerAssigned, true},
		{StateSubmitted, StateBulkUnlocked, false},
		{StateDraft, StateSubmitted, true},
		{StateDelivered, StateCompleted, true},
		{StateCompleted, StateDraft, false},
		{StateSampleApproved, StateSampleInProgress, false},
		{OrderState("BOGUS"), StateSubmitted, false},
	}
	for _, tt := range tests {
		if got := CanTransition(tt.from, tt.to); got != tt.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestTransitionsOnlyMoveForward(t *testing.T) {
	for _, from := range OrderStates() {
		for _, to := range ValidNextStates(from) {
			if StateIndex(to) <= StateIndex(from) {
				t.Errorf("%s -> %s moves backwards", from, to)
			}
		}
	}
}

func TestTerminalStates(t *testing.T) {
	for _, s := range OrderStates() {
		terminal := IsTerminalState(s)
		if terminal != (s == StateCompleted) {
			t.Errorf("IsTerminalState(%s) = %v", s, terminal)
		}
		if terminal && len(ValidNextStates(s)) != 0 {
			t.Errorf("terminal state %s has successors", s)
		}
	}
	if IsTerminalState("UNKNOWN") {
		t.Error("unknown state reported as terminal")
	}
}

func TestStateIndex(t *testing.T) {
	if got := StateIndex(StateDraft); got != 0 {
		t.Errorf("StateIndex(DRAFT) = %d", got)
	}
	if got := StateIndex(StateCompleted); got != 12 {
		t.Errorf("StateIndex(COMPLETED) = %d", got)
	}
	if got := StateIndex("NOPE"); got != -1 {
		t.Errorf("StateIndex(NOPE) = %d", got)
	}
	if len(OrderStates()) != 13 {
		t.Errorf("expected 13 states, got %d", len(OrderStates()))
	}
}

func TestValidNextStatesReturnsCopy(t *testing.T) {
	next := ValidNextStates(StateManufacturerAssigned)
	next[0] = StateCompleted
	if CanTransition(StateManufacturerAssigned, StateCompleted) {
		t.Fatal("mutating the result changed the transition table")
	}
}

func TestParseOrderState(t *testing.T) {
	if s, err := ParseOrderState("DISPATCHED"); err != nil || s != StateDispatched {
		t.Fatalf("ParseOrderState(DISPATCHED) = %v, %v", s, err)
	}
	if _, err := ParseOrderState("dispatched"); !errors.Is(err, ErrUnknownOrderState) {
		t.Fatalf("expected ErrUnknownOrderState, got %v", err)
	}
}

func TestCanTransitionForMode(t *testing.T) {
	tests := []struct {
		name     string
		mode     OrderMode
		from, to OrderState
		allowed  bool
	}{
		{"direct bulk skips sampling", ModeDirectBulk, StateManufacturerAssigned, StateBulkUnlocked, true},
		{"direct bulk has no sample", ModeDirectBulk, StateManufacturerAssigned, StateSampleInProgress, false},
		{"sample then bulk cannot skip", ModeSampleThenBulk, StateManufacturerAssigned, StateBulkUnlocked, false},
		{"sample then bulk samples", ModeSampleThenBulk, StateManufacturerAssigned, StateSampleInProgress, true},
		{"sample then bulk unlocks", ModeSampleThenBulk, StateSampleApproved, StateBulkUnlocked, true},
		{"sample only never unlocks", ModeSampleOnly, StateSampleApproved, StateBulkUnlocked, false},
		{"sample only ships sample", ModeSampleOnly, StateSampleApproved, StateReadyForDispatch, true},
		{"sample then bulk cannot ship sample", ModeSampleThenBulk, StateSampleApproved, StateReadyForDispatch, false},
		{"outside table", ModeSampleOnly, StateDraft, StateCompleted, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := CanTransitionForMode(tt.mode, tt.from, tt.to)
			if d.Allowed != tt.allowed {
				t.Fatalf("allowed = %v (%s), want %v", d.Allowed, d.Reason, tt.allowed)
			}
			if !d.Allowed && d.Reason == "" {
				t.Fatal("denied decision without reason")
			}
		})
	}
}

func TestCanActorTransitionOrder(t *testing.T) {
	tests := []struct {
		role     Role
		from, to OrderState
		allowed  bool
	}{
		{RoleBuyer, StateDraft, StateSubmitted, true},
		{RoleManufacturer, StateDraft, StateSubmitted, false},
		{RoleBuyer, StateSubmitted, StateManufacturerAssigned, false},
		{RoleAdmin, StateSubmitted, StateManufacturerAssigned, true},
		{RoleManufacturer, StateReadyForDispatch, StateDispatched, true},
		{RoleBuyer, StateDispatched, StateDelivered, true},
		{RoleManufacturer, StateDispatched, StateDelivered, false},
		{RoleSystem, StateDelivered, StateCompleted, true},
		{RoleAdmin, StateDraft, StateCompleted, false},
	}
	for _, tt := range tests {
		d := CanActorTransitionOrder(tt.role, tt.from, tt.to)
		if d.Allowed != tt.allowed {
			t.Errorf("%s %s->%s allowed = %v (%s), want %v", tt.role, tt.from, tt.to, d.Allowed, d.Reason, tt.allowed)
		}
	}
}
