package domain

import "fmt"

type PaymentState string

const (
	PaymentInitiated  PaymentState = "INITIATED"
	PaymentHeld       PaymentState = "HELD"
	PaymentReleasable PaymentState = "RELEASABLE"
	PaymentReleased   PaymentState = "RELEASED"
	PaymentRefunded   PaymentState = "REFUNDED"
)

// Escrow split of the order total, in percent.
const (
	UpfrontSharePercent   = 55
	RemainingSharePercent = 100 - UpfrontSharePercent
)

var paymentStates = []PaymentState{
	PaymentInitiated,
	PaymentHeld,
	PaymentReleasable,
	PaymentReleased,
	PaymentRefunded,
}

var validNextPaymentStates = map[PaymentState][]PaymentState{
	PaymentInitiated:  {PaymentHeld, PaymentRefunded},
	PaymentHeld:       {PaymentReleasable, PaymentRefunded},
	PaymentReleasable: {PaymentReleased, PaymentRefunded},
	PaymentReleased:   {},
	PaymentRefunded:   {},
}

var paymentTransitionActors = map[PaymentState]map[PaymentState][]Role{
	PaymentInitiated:  {PaymentHeld: {RoleBuyer, RoleAdmin}, PaymentRefunded: {RoleAdmin}},
	PaymentHeld:       {PaymentReleasable: {RoleAdmin, RoleSystem}, PaymentRefunded: {RoleAdmin}},
	PaymentReleasable: {PaymentReleased: {RoleAdmin}, PaymentRefunded: {RoleAdmin}},
}

func PaymentStates() []PaymentState {
	out := make([]PaymentState, len(paymentStates))
	copy(out, paymentStates)
	return out
}

func ParsePaymentState(s string) (PaymentState, error) {
	state := PaymentState(s)
	if _, ok := validNextPaymentStates[state]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPaymentState, s)
	}
	return state, nil
}

func ValidNextPaymentStates(s PaymentState) []PaymentState {
	next := validNextPaymentStates[s]
	out := make([]PaymentState, len(next))
	copy(out, next)
	return out
}

func CanTransitionPayment(from, to PaymentState) bool {
	for _, s := range validNextPaymentStates[from] {
		if s == to {
			return true
		}
	}
	return false
}

func IsTerminalPaymentState(s PaymentState) bool {
	next, ok := validNextPaymentStates[s]
	return ok && len(next) == 0
}

func CanActorPerformPaymentTransition(role Role, from, to PaymentState) Decision {
	if from == PaymentReleased && to == PaymentRefunded {
		return Deny("released payments cannot be refunded")
	}
	if !CanTransitionPayment(from, to) {
		return Deny("cannot move payment from %s to %s", from, to)
	}
	for _, r := range paymentTransitionActors[from][to] {
		if r == role {
			return Allow()
		}
	}
	if to == PaymentRefunded {
		return Deny("only admin can refund a payment")
	}
	return Deny("%s may not move payment from %s to %s", role, from, to)
}

// IsEscrowFunded reports whether the buyer's money sits in escrow, which is the
// precondition for any production work.
func IsEscrowFunded(s PaymentState) bool {
	switch s {
	case PaymentHeld, PaymentReleasable, PaymentReleased:
		return true
	}
	return false
}

// CanMarkPaymentReleasable checks the conditions under which escrowed funds may be
// released to the manufacturer. Timestamps are checked rather than the state label.
func CanMarkPaymentReleasable(o *Order) Decision {
	if o.PaymentState != PaymentHeld {
		return Deny("payment must be held in escrow, got %s", o.PaymentState)
	}
	if o.Mode == ModeSampleOnly {
		if o.SampleApprovedAt == nil {
			return Deny("sample has not been approved")
		}
		return Allow()
	}
	switch {
	case o.QCApprovedAt == nil:
		return Deny("bulk QC has not been approved")
	case o.DeliveredAt == nil:
		return Deny("delivery has not been confirmed")
	}
	return Allow()
}

func CanRefundPayment(o *Order) Decision {
	switch o.PaymentState {
	case PaymentReleased:
		return Deny("released payments cannot be refunded")
	case PaymentRefunded:
		return Deny("payment is already refunded")
	}
	return Allow()
}

// EscrowSplit divides a total in minor units into the upfront and remaining shares.
// Rounding goes to the remaining share so the parts always add up to the total.
func EscrowSplit(total int64) (upfront, remaining int64) {
	if total <= 0 {
		return 0, 0
	}
	// Split the hundreds and the remainder separately so large totals cannot overflow.
	upfront = total/100*UpfrontSharePercent + total%100*UpfrontSharePercent/100
	return upfront, total - upfront
}
