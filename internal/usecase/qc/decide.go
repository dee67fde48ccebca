package qc

import (
	"context"
	"fmt"

	"github.com/prabindersinghh/leorit-order-service/internal/domain"
	"github.com/prabindersinghh/leorit-order-service/internal/usecase"
)

func (uc *DefaultQCUsecase) ApproveQC(ctx context.Context, actor domain.Actor, qcID string) (*domain.QCRecord, error) {
	return uc.decide(ctx, actor, qcID, domain.QCApproved, "", func(order *domain.Order, rec *domain.QCRecord) domain.Decision {
		return domain.CanApproveQC(actor, order, rec)
	})
}

func (uc *DefaultQCUsecase) RejectQC(ctx context.Context, actor domain.Actor, qcID, reason string) (*domain.QCRecord, error) {
	return uc.decide(ctx, actor, qcID, domain.QCRejected, reason, func(order *domain.Order, rec *domain.QCRecord) domain.Decision {
		return domain.CanRejectQC(actor, order, rec, reason)
	})
}

func (uc *DefaultQCUsecase) RequestRevision(ctx context.Context, actor domain.Actor, qcID, reason string) (*domain.QCRecord, error) {
	return uc.decide(ctx, actor, qcID, domain.QCRevisionRequested, reason, func(order *domain.Order, rec *domain.QCRecord) domain.Decision {
		return domain.CanRequestQCRevision(actor, order, rec, reason)
	})
}

// decide resolves a pending record. Only approvals move the order; a rejected or
// revision-requested record waits for a re-upload in the same state.
func (uc *DefaultQCUsecase) decide(
	ctx context.Context,
	actor domain.Actor,
	qcID string,
	status domain.QCStatus,
	reason string,
	guard func(order *domain.Order, rec *domain.QCRecord) domain.Decision,
) (*domain.QCRecord, error) {
	existing, err := uc.QCRepo.GetQCRecord(ctx, qcID)
	if err != nil {
		return nil, usecase.StatusError(err)
	}
	if d := domain.CanActorDecideQC(actor.Role, existing.Stage); !d.Allowed {
		return nil, usecase.PermissionDenied(d)
	}

	var record *domain.QCRecord
	_, err = uc.Lifecycle.Apply(ctx, "qc_"+string(status), actor, existing.OrderID, func(op *usecase.Operation, order *domain.Order) error {
		rec, err := op.GetQCRecord(qcID)
		if err != nil {
			return err
		}
		if d := guard(order, rec); !d.Allowed {
			return usecase.FailedPrecondition(d)
		}

		rec.Resolve(status, actor, reason, op.At)
		if err := op.SaveQCRecord(rec); err != nil {
			return err
		}
		note := fmt.Sprintf("%s QC %s %s", rec.Stage, rec.ID, status)
		if rec.DecisionReason != "" {
			note += ": " + rec.DecisionReason
		}
		op.Record(domain.EventQC, string(domain.QCPending), string(status), note)

		if status == domain.QCApproved {
			from := order.State
			order.RecordQCApproval(rec.Stage, op.At)
			op.Record(domain.EventOrderState, string(from), string(order.State), fmt.Sprintf("%s QC approved", rec.Stage))
		}
		record = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.Lifecycle.Metrics.RecordQCDecision(string(record.Stage), string(status), string(actor.Role))
	return record, nil
}
