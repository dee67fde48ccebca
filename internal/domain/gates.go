package domain

// CanStartProduction gates sample and bulk production work.
func CanStartProduction(o *Order) Decision {
	if !o.SpecsLocked {
		return Deny("specifications must be locked before production starts")
	}
	if !IsEscrowFunded(o.PaymentState) {
		return Deny("escrow must be funded before production starts")
	}
	return Allow()
}

// qcApproved reports whether qc carries the approval the order's delivery depends on.
// Sample-only orders count the buyer's sample approval as the QC decision.
func qcApproved(o *Order, qc *QCRecord) bool {
	if o.Mode == ModeSampleOnly {
		return qc != nil && qc.Stage == QCStageSample && qc.Status == QCApproved
	}
	return qc.IsAdminApproved()
}

// CanProceedToDelivery requires uploaded QC evidence that admin has approved.
func CanProceedToDelivery(o *Order, qc *QCRecord) Decision {
	if qc == nil || o.QCUploadedAt == nil {
		return Deny("QC evidence has not been uploaded")
	}
	if !qcApproved(o, qc) {
		return Deny("QC has not been approved by admin")
	}
	return Allow()
}

// CanDispatch picks the delivery precondition for the order's branch of the lifecycle.
func CanDispatch(o *Order, qc *QCRecord) Decision {
	if o.State != StateReadyForDispatch {
		return Deny("order is not ready for dispatch")
	}
	if o.Mode == ModeSampleOnly && o.SampleApprovedAt == nil {
		return Deny("sample approval is not recorded")
	}
	return CanProceedToDelivery(o, qc)
}

func isDeliverable(s OrderState) bool {
	return s == StateDelivered || s == StateCompleted
}

// CanReleasePayment requires QC approval, a delivered order and a releasable escrow.
func CanReleasePayment(o *Order, qc *QCRecord) Decision {
	if !qcApproved(o, qc) {
		return Deny("QC has not been approved by admin")
	}
	if !isDeliverable(o.State) {
		return Deny("order must be delivered before payment release, got %s", o.State)
	}
	if o.PaymentState != PaymentReleasable {
		return Deny("payment is %s, expected %s", o.PaymentState, PaymentReleasable)
	}
	return Allow()
}

// ExecutionGates is a snapshot of the three gates for display.
type ExecutionGates struct {
	StartProduction   Decision `json:"start_production"`
	ProceedToDelivery Decision `json:"proceed_to_delivery"`
	ReleasePayment    Decision `json:"release_payment"`
}

// EvaluateGates runs every gate against the order and its latest QC record for the
// stage that precedes delivery.
func EvaluateGates(o *Order, qc *QCRecord) ExecutionGates {
	return ExecutionGates{
		StartProduction:   CanStartProduction(o),
		ProceedToDelivery: CanProceedToDelivery(o, qc),
		ReleasePayment:    CanReleasePayment(o, qc),
	}
}

// DeliveryQCStage is the stage whose QC record gates delivery and release.
func DeliveryQCStage(mode OrderMode) QCStage {
	if mode == ModeSampleOnly {
		return QCStageSample
	}
	return QCStageBulk
}
