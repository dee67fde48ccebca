package domain

import (
	"testing"
	"time"
)

func TestCanStartProduction(t *testing.T) {
	if d := CanStartProduction(&Order{SpecsLocked: false, PaymentState: PaymentHeld}); d.Allowed || d.Reason == "" {
		t.Fatalf("unlocked specs allowed: %+v", d)
	}
	if d := CanStartProduction(&Order{SpecsLocked: true, PaymentState: PaymentInitiated}); d.Allowed {
		t.Fatal("unfunded escrow allowed")
	}
	if d := CanStartProduction(&Order{SpecsLocked: true, PaymentState: PaymentHeld}); !d.Allowed {
		t.Fatalf("denied: %s", d.Reason)
	}
}

func TestCanProceedToDelivery(t *testing.T) {
	now := time.Now()
	approved := &QCRecord{Stage: QCStageBulk, Status: QCApproved, AdminDecision: QCApproved}
	pending := &QCRecord{Stage: QCStageBulk, Status: QCPending}
	o := &Order{Mode: ModeDirectBulk, QCUploadedAt: &now}

	if d := CanProceedToDelivery(o, nil); d.Allowed {
		t.Error("allowed without QC")
	}
	if d := CanProceedToDelivery(&Order{Mode: ModeDirectBulk}, approved); d.Allowed {
		t.Error("allowed without upload timestamp")
	}
	if d := CanProceedToDelivery(o, pending); d.Allowed {
		t.Error("allowed with pending QC")
	}
	if d := CanProceedToDelivery(o, approved); !d.Allowed {
		t.Errorf("denied: %s", d.Reason)
	}
}

func TestCanDispatch(t *testing.T) {
	now := time.Now()
	sampleApproved := &QCRecord{Stage: QCStageSample, Status: QCApproved}
	sampleOnly := &Order{Mode: ModeSampleOnly, State: StateReadyForDispatch, QCUploadedAt: &now, SampleApprovedAt: &now}
	if d := CanDispatch(sampleOnly, sampleApproved); !d.Allowed {
		t.Fatalf("sample only dispatch denied: %s", d.Reason)
	}
	sampleOnly.SampleApprovedAt = nil
	if d := CanDispatch(sampleOnly, sampleApproved); d.Allowed {
		t.Fatal("dispatch without sample approval")
	}
	if d := CanDispatch(&Order{State: StateBulkQCUploaded}, nil); d.Allowed {
		t.Fatal("dispatch before ready")
	}
}

func TestCanReleasePayment(t *testing.T) {
	now := time.Now()
	approved := &QCRecord{Stage: QCStageBulk, Status: QCApproved, AdminDecision: QCApproved}
	base := Order{Mode: ModeSampleThenBulk, State: StateDelivered, PaymentState: PaymentReleasable, QCUploadedAt: &now}

	tests := []struct {
		name    string
		mutate  func(o *Order)
		qc      *QCRecord
		allowed bool
	}{
		{"all conditions", func(*Order) {}, approved, true},
		{"no admin approval", func(*Order) {}, &QCRecord{Stage: QCStageBulk, Status: QCApproved}, false},
		{"not delivered", func(o *Order) { o.State = StateDispatched }, approved, false},
		{"not releasable", func(o *Order) { o.PaymentState = PaymentHeld }, approved, false},
		{"sample only buyer approval", func(o *Order) { o.Mode = ModeSampleOnly }, &QCRecord{Stage: QCStageSample, Status: QCApproved}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := base
			tt.mutate(&o)
			d := CanReleasePayment(&o, tt.qc)
			if d.Allowed != tt.allowed {
				t.Fatalf("allowed = %v (%s), want %v", d.Allowed, d.Reason, tt.allowed)
			}
		})
	}
}

func TestEvaluateGates(t *testing.T) {
	g := EvaluateGates(&Order{Mode: ModeDirectBulk, State: StateDraft, PaymentState: PaymentInitiated}, nil)
	if g.StartProduction.Allowed || g.ProceedToDelivery.Allowed || g.ReleasePayment.Allowed {
		t.Fatalf("draft order passed a gate: %+v", g)
	}
}

func TestOrderMoveToStampsMilestones(t *testing.T) {
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	o := &Order{State: StateDraft}
	o.MoveTo(StateSubmitted, at)
	if o.SubmittedAt == nil || !o.SubmittedAt.Equal(at) || o.State != StateSubmitted {
		t.Fatalf("submit not stamped: %+v", o)
	}
	later := at.Add(time.Hour)
	o.MoveTo(StateSubmitted, later)
	if !o.SubmittedAt.Equal(at) {
		t.Fatal("milestone overwritten")
	}
}

func TestCanSubmit(t *testing.T) {
	ok := &Order{State: StateDraft, Quantity: 10, TotalAmount: 1000, Fabric: "cotton", Color: "black", DesignURL: "d"}
	if d := CanSubmit(ok); !d.Allowed {
		t.Fatalf("denied: %s", d.Reason)
	}
	missing := *ok
	missing.DesignURL = ""
	if d := CanSubmit(&missing); d.Allowed {
		t.Fatal("submitted without design")
	}
}

func TestCanAccessOrder(t *testing.T) {
	o := &Order{BuyerID: "b-1", ManufacturerID: "m-1"}
	if d := CanAccessOrder(buyer, o); !d.Allowed {
		t.Error("buyer denied own order")
	}
	if d := CanAccessOrder(Actor{ID: "m-2", Role: RoleManufacturer}, o); d.Allowed {
		t.Error("foreign manufacturer allowed")
	}
	if d := CanAccessOrder(Actor{Role: RoleBuyer}, &Order{}); d.Allowed {
		t.Error("empty ids matched")
	}
}
