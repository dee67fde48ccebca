package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

type QCStage string

const (
	QCStageSample QCStage = "sample"
	QCStageBulk   QCStage = "bulk"
)

func ParseQCStage(s string) (QCStage, error) {
	switch stage := QCStage(s); stage {
	case QCStageSample, QCStageBulk:
		return stage, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownQCStage, s)
}

type QCStatus string

const (
	QCPending           QCStatus = "pending"
	QCApproved          QCStatus = "approved"
	QCRejected          QCStatus = "rejected"
	QCRevisionRequested QCStatus = "revision_requested"
)

// MinDecisionReasonLength is the shortest accepted rejection or revision reason.
const MinDecisionReasonLength = 10

type QCRecord struct {
	ID             string
	OrderID        string
	Stage          QCStage
	Status         QCStatus
	VideoURL       string
	PhotoURLs      []string
	DefectNotes    string
	DefectCount    int
	UploadedBy     string
	DecidedBy      string
	DecidedByRole  Role
	DecisionReason string
	AdminDecision  QCStatus
	DecidedAt      *time.Time
	CreatedAt      time.Time
}

func (r *QCRecord) HasVideo() bool {
	return r != nil && strings.TrimSpace(r.VideoURL) != ""
}

func (r *QCRecord) IsResolved() bool {
	return r != nil && r.Status != QCPending
}

// NeedsReupload reports whether the record was sent back to the manufacturer.
func (r *QCRecord) NeedsReupload() bool {
	return r != nil && (r.Status == QCRejected || r.Status == QCRevisionRequested)
}

func (r *QCRecord) IsAdminApproved() bool {
	return r != nil && r.Status == QCApproved && r.AdminDecision == QCApproved
}

// Resolve records the one and only decision on a record.
func (r *QCRecord) Resolve(status QCStatus, actor Actor, reason string, at time.Time) {
	r.Status = status
	r.DecidedBy = actor.ID
	r.DecidedByRole = actor.Role
	r.DecisionReason = strings.TrimSpace(reason)
	if actor.Role == RoleAdmin {
		r.AdminDecision = status
	}
	t := at
	r.DecidedAt = &t
}

// ValidateDecisionReason enforces a meaningful explanation on rejections and revision
// requests.
func ValidateDecisionReason(reason string) Decision {
	if utf8.RuneCountInString(strings.TrimSpace(reason)) < MinDecisionReasonLength {
		return Deny("reason must be at least %d characters", MinDecisionReasonLength)
	}
	return Allow()
}

type QCUpload struct {
	Stage       QCStage
	VideoURL    string
	PhotoURLs   []string
	DefectNotes string
	DefectCount int
}

func qcStates(stage QCStage) (inProduction, uploaded OrderState) {
	if stage == QCStageBulk {
		return StateBulkInProduction, StateBulkQCUploaded
	}
	return StateSampleInProgress, StateSampleQCUploaded
}

// CanUploadQC checks a manufacturer upload against the order state. latest is the most
// recent record of the same stage, or nil.
func CanUploadQC(actor Actor, o *Order, latest *QCRecord, upload QCUpload) Decision {
	if d := CanActorUploadQC(actor.Role); !d.Allowed {
		return d
	}
	if strings.TrimSpace(upload.VideoURL) == "" {
		return Deny("QC upload requires a video")
	}
	if upload.DefectCount < 0 {
		return Deny("defect count cannot be negative")
	}
	inProduction, uploaded := qcStates(upload.Stage)
	switch o.State {
	case inProduction:
		return Allow()
	case uploaded:
		if latest.NeedsReupload() {
			return Allow()
		}
		return Deny("%s QC is already awaiting a decision", upload.Stage)
	}
	return Deny("%s QC cannot be uploaded while the order is %s", upload.Stage, o.State)
}

func CanActorUploadQC(role Role) Decision {
	if role != RoleManufacturer {
		return Deny("only the manufacturer can upload QC evidence")
	}
	return Allow()
}

// CanActorDecideQC lets the buyer decide on samples; bulk QC is admin-only.
func CanActorDecideQC(role Role, stage QCStage) Decision {
	if stage == QCStageBulk && role != RoleAdmin {
		return Deny("only admin can decide on bulk QC")
	}
	if stage == QCStageSample && role != RoleBuyer && role != RoleAdmin {
		return Deny("only the buyer or admin can decide on sample QC")
	}
	return Allow()
}

func canDecideQC(actor Actor, o *Order, rec *QCRecord) Decision {
	if rec == nil {
		return Deny("no QC record to decide on")
	}
	if d := CanActorDecideQC(actor.Role, rec.Stage); !d.Allowed {
		return d
	}
	if rec.IsResolved() {
		return Deny("QC record is already %s", rec.Status)
	}
	if !rec.HasVideo() {
		return Deny("QC decision requires video evidence")
	}
	if _, uploaded := qcStates(rec.Stage); o.State != uploaded {
		return Deny("order is %s, expected %s", o.State, uploaded)
	}
	return Allow()
}

func CanApproveQC(actor Actor, o *Order, rec *QCRecord) Decision {
	return canDecideQC(actor, o, rec)
}

func CanRejectQC(actor Actor, o *Order, rec *QCRecord, reason string) Decision {
	return And(canDecideQC(actor, o, rec), ValidateDecisionReason(reason))
}

// CanRequestQCRevision applies to sample QC only; bulk rework goes through rejection.
func CanRequestQCRevision(actor Actor, o *Order, rec *QCRecord, reason string) Decision {
	if rec != nil && rec.Stage != QCStageSample {
		return Deny("revisions can only be requested on sample QC")
	}
	return And(canDecideQC(actor, o, rec), ValidateDecisionReason(reason))
}

// RecordQCUpload moves the order to the uploaded state of the stage. Only uploads of
// the stage that gates delivery stamp qc_uploaded_at, and a re-upload refreshes it.
func (o *Order) RecordQCUpload(stage QCStage, at time.Time) {
	_, uploaded := qcStates(stage)
	if o.State != uploaded {
		o.MoveTo(uploaded, at)
	}
	if stage == DeliveryQCStage(o.Mode) {
		t := at
		o.QCUploadedAt = &t
	}
	o.UpdatedAt = at
}

// RecordQCApproval applies an approval: sample approval moves to SAMPLE_APPROVED,
// bulk approval stamps qc_approved_at and makes the order ready for dispatch.
func (o *Order) RecordQCApproval(stage QCStage, at time.Time) {
	if stage == QCStageBulk {
		stamp(&o.QCApprovedAt, at)
		o.MoveTo(StateReadyForDispatch, at)
		return
	}
	o.MoveTo(StateSampleApproved, at)
}

// CanUnlockBulk gates the start of bulk. For sample-then-bulk orders the recorded
// approval timestamp is required, not only the state label, so a stale state column
// cannot unlock bulk on its own.
func CanUnlockBulk(o *Order) Decision {
	switch o.Mode {
	case ModeDirectBulk:
		if o.State != StateManufacturerAssigned {
			return Deny("direct bulk orders unlock bulk right after manufacturer assignment")
		}
	case ModeSampleThenBulk:
		if o.State != StateSampleApproved {
			return Deny("bulk unlocks only after sample approval")
		}
		if o.SampleApprovedAt == nil {
			return Deny("sample approval is not recorded")
		}
	default:
		return Deny("%s orders have no bulk stage", o.Mode)
	}
	if !IsEscrowFunded(o.PaymentState) {
		return Deny("escrow must be funded before bulk is unlocked")
	}
	return Allow()
}
