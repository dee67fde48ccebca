package domain

import (
	"strings"
	"testing"
	"time"
)

var (
	manufacturer = Actor{ID: "m-1", Role: RoleManufacturer}
	buyer        = Actor{ID: "b-1", Role: RoleBuyer}
	admin        = Actor{ID: "a-1", Role: RoleAdmin}
)

func TestValidateDecisionReason(t *testing.T) {
	tests := []struct {
		reason  string
		allowed bool
	}{
		{"", false},
		{"too short", false},
		{"          x         ", false},
		{"stitching is loose", true},
		{"1234567890", true},
		{"ÉÉÉÉÉÉÉÉÉÉ", true},
	}
	for _, tt := range tests {
		if d := ValidateDecisionReason(tt.reason); d.Allowed != tt.allowed {
			t.Errorf("ValidateDecisionReason(%q) = %v, want %v", tt.reason, d.Allowed, tt.allowed)
		}
	}
}

func TestCanUploadQC(t *testing.T) {
	upload := QCUpload{Stage: QCStageSample, VideoURL: "https://cdn/v.mp4"}
	rejected := &QCRecord{Stage: QCStageSample, Status: QCRejected}
	pending := &QCRecord{Stage: QCStageSample, Status: QCPending}

	tests := []struct {
		name    string
		actor   Actor
		state   OrderState
		latest  *QCRecord
		upload  QCUpload
		allowed bool
	}{
		{"sample in progress", manufacturer, StateSampleInProgress, nil, upload, true},
		{"buyer cannot upload", buyer, StateSampleInProgress, nil, upload, false},
		{"admin cannot upload", admin, StateSampleInProgress, nil, upload, false},
		{"missing video", manufacturer, StateSampleInProgress, nil, QCUpload{Stage: QCStageSample}, false},
		{"wrong state", manufacturer, StateManufacturerAssigned, nil, upload, false},
		{"reupload after rejection", manufacturer, StateSampleQCUploaded, rejected, upload, true},
		{"reupload while pending", manufacturer, StateSampleQCUploaded, pending, upload, false},
		{"bulk in production", manufacturer, StateBulkInProduction, nil, QCUpload{Stage: QCStageBulk, VideoURL: "v"}, true},
		{"bulk upload during sample", manufacturer, StateSampleInProgress, nil, QCUpload{Stage: QCStageBulk, VideoURL: "v"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := &Order{State: tt.state}
			d := CanUploadQC(tt.actor, o, tt.latest, tt.upload)
			if d.Allowed != tt.allowed {
				t.Fatalf("allowed = %v (%s), want %v", d.Allowed, d.Reason, tt.allowed)
			}
		})
	}
}

func TestQCDecisions(t *testing.T) {
	sample := func() *QCRecord {
		return &QCRecord{Stage: QCStageSample, Status: QCPending, VideoURL: "v"}
	}
	bulk := func() *QCRecord {
		return &QCRecord{Stage: QCStageBulk, Status: QCPending, VideoURL: "v"}
	}
	sampleOrder := &Order{State: StateSampleQCUploaded}
	bulkOrder := &Order{State: StateBulkQCUploaded}
	reason := "colour does not match swatch"

	if d := CanApproveQC(buyer, sampleOrder, sample()); !d.Allowed {
		t.Errorf("buyer approve sample: %s", d.Reason)
	}
	if d := CanApproveQC(manufacturer, sampleOrder, sample()); d.Allowed {
		t.Error("manufacturer approved own sample")
	}
	if d := CanApproveQC(buyer, bulkOrder, bulk()); d.Allowed {
		t.Error("buyer approved bulk QC")
	}
	if d := CanApproveQC(admin, bulkOrder, bulk()); !d.Allowed {
		t.Errorf("admin approve bulk: %s", d.Reason)
	}
	noVideo := sample()
	noVideo.VideoURL = "  "
	if d := CanApproveQC(admin, sampleOrder, noVideo); d.Allowed {
		t.Error("approved without video")
	}
	if d := CanRejectQC(admin, sampleOrder, noVideo, reason); d.Allowed {
		t.Error("rejected without video")
	}
	if d := CanRejectQC(buyer, sampleOrder, sample(), "bad"); d.Allowed {
		t.Error("rejected with short reason")
	}
	if d := CanRejectQC(buyer, sampleOrder, sample(), reason); !d.Allowed {
		t.Errorf("reject: %s", d.Reason)
	}
	if d := CanRequestQCRevision(buyer, sampleOrder, sample(), "short"); d.Allowed {
		t.Error("revision with short reason")
	}
	if d := CanRequestQCRevision(admin, bulkOrder, bulk(), reason); d.Allowed {
		t.Error("revision on bulk QC")
	}
	if d := CanApproveQC(buyer, &Order{State: StateSampleInProgress}, sample()); d.Allowed {
		t.Error("approved while order not awaiting QC")
	}
	if d := CanApproveQC(buyer, sampleOrder, nil); d.Allowed {
		t.Error("approved missing record")
	}
}

func TestResolvedRecordIsImmutable(t *testing.T) {
	rec := &QCRecord{Stage: QCStageSample, Status: QCPending, VideoURL: "v"}
	rec.Resolve(QCApproved, buyer, "", time.Now())
	o := &Order{State: StateSampleQCUploaded}
	if d := CanApproveQC(admin, o, rec); d.Allowed {
		t.Fatal("second decision allowed")
	}
	if d := CanRejectQC(admin, o, rec, strings.Repeat("x", 20)); d.Allowed {
		t.Fatal("rejection of resolved record allowed")
	}
	if rec.AdminDecision != "" {
		t.Fatalf("buyer decision recorded as admin decision: %s", rec.AdminDecision)
	}
}

func TestResolveByAdminSetsAdminDecision(t *testing.T) {
	rec := &QCRecord{Stage: QCStageBulk, Status: QCPending, VideoURL: "v"}
	rec.Resolve(QCApproved, admin, "  ", time.Now())
	if !rec.IsAdminApproved() || rec.DecidedAt == nil || rec.DecidedBy != admin.ID {
		t.Fatalf("unexpected record %+v", rec)
	}
}

func TestCanUnlockBulk(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name    string
		order   Order
		allowed bool
	}{
		{"sample approved with timestamp", Order{Mode: ModeSampleThenBulk, State: StateSampleApproved, SampleApprovedAt: &now, PaymentState: PaymentHeld}, true},
		{"stale state label", Order{Mode: ModeSampleThenBulk, State: StateSampleApproved, PaymentState: PaymentHeld}, false},
		{"escrow not funded", Order{Mode: ModeSampleThenBulk, State: StateSampleApproved, SampleApprovedAt: &now, PaymentState: PaymentInitiated}, false},
		{"direct bulk after assignment", Order{Mode: ModeDirectBulk, State: StateManufacturerAssigned, PaymentState: PaymentHeld}, true},
		{"direct bulk too early", Order{Mode: ModeDirectBulk, State: StateSubmitted, PaymentState: PaymentHeld}, false},
		{"sample only", Order{Mode: ModeSampleOnly, State: StateSampleApproved, SampleApprovedAt: &now, PaymentState: PaymentHeld}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := CanUnlockBulk(&tt.order)
			if d.Allowed != tt.allowed {
				t.Fatalf("allowed = %v (%s), want %v", d.Allowed, d.Reason, tt.allowed)
			}
		})
	}
}

func TestRecordQCUpload(t *testing.T) {
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	sampleThenBulk := &Order{Mode: ModeSampleThenBulk, State: StateSampleInProgress}
	sampleThenBulk.RecordQCUpload(QCStageSample, at)
	if sampleThenBulk.State != StateSampleQCUploaded {
		t.Errorf("state = %s, want %s", sampleThenBulk.State, StateSampleQCUploaded)
	}
	if sampleThenBulk.QCUploadedAt != nil {
		t.Errorf("sample upload of a bulk order must not stamp qc_uploaded_at")
	}

	sampleOnly := &Order{Mode: ModeSampleOnly, State: StateSampleInProgress}
	sampleOnly.RecordQCUpload(QCStageSample, at)
	if sampleOnly.QCUploadedAt == nil || !sampleOnly.QCUploadedAt.Equal(at) {
		t.Errorf("sample-only upload should stamp qc_uploaded_at, got %v", sampleOnly.QCUploadedAt)
	}

	later := at.Add(time.Hour)
	sampleOnly.RecordQCUpload(QCStageSample, later)
	if !sampleOnly.QCUploadedAt.Equal(later) {
		t.Errorf("re-upload should refresh qc_uploaded_at")
	}
	if sampleOnly.State != StateSampleQCUploaded {
		t.Errorf("re-upload changed state to %s", sampleOnly.State)
	}
}

func TestRecordQCApproval(t *testing.T) {
	at := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	bulk := &Order{Mode: ModeDirectBulk, State: StateBulkQCUploaded}
	bulk.RecordQCApproval(QCStageBulk, at)
	if bulk.State != StateReadyForDispatch || bulk.QCApprovedAt == nil {
		t.Errorf("bulk approval: state %s, qc_approved_at %v", bulk.State, bulk.QCApprovedAt)
	}

	sample := &Order{Mode: ModeSampleThenBulk, State: StateSampleQCUploaded}
	sample.RecordQCApproval(QCStageSample, at)
	if sample.State != StateSampleApproved || sample.SampleApprovedAt == nil {
		t.Errorf("sample approval: state %s, sample_approved_at %v", sample.State, sample.SampleApprovedAt)
	}
	if sample.QCApprovedAt != nil {
		t.Errorf("sample approval must not stamp qc_approved_at")
	}
}
