package qc

import (
	"context"
	"fmt"

	"github.com/jaevor/go-nanoid"
	"github.com/prabindersinghh/leorit-order-service/internal/domain"
	"github.com/prabindersinghh/leorit-order-service/internal/usecase"
	qcdto "github.com/prabindersinghh/leorit-order-service/internal/usecase/dto/qc"
)

// UploadQC stores new QC evidence. Re-uploads after a rejection or revision request
// create a new record; decided records are never edited.
func (uc *DefaultQCUsecase) UploadQC(ctx context.Context, actor domain.Actor, input *qcdto.UploadQCInput) (*domain.QCRecord, error) {
	stage, err := domain.ParseQCStage(input.Stage)
	if err != nil {
		return nil, usecase.InvalidArgument(err.Error())
	}
	if d := domain.CanActorUploadQC(actor.Role); !d.Allowed {
		return nil, usecase.PermissionDenied(d)
	}
	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, fmt.Errorf("failed to init id generator: %w", err)
	}

	upload := domain.QCUpload{
		Stage:       stage,
		VideoURL:    input.VideoURL,
		PhotoURLs:   input.PhotoURLs,
		DefectNotes: input.DefectNotes,
		DefectCount: input.DefectCount,
	}

	var record *domain.QCRecord
	_, err = uc.Lifecycle.Apply(ctx, "qc_upload", actor, input.OrderID, func(op *usecase.Operation, order *domain.Order) error {
		latest, err := op.LatestQCRecord(stage)
		if err != nil {
			return err
		}
		if d := domain.CanUploadQC(actor, order, latest, upload); !d.Allowed {
			return usecase.FailedPrecondition(d)
		}

		record = &domain.QCRecord{
			ID:          idGenerator(),
			OrderID:     order.ID,
			Stage:       stage,
			Status:      domain.QCPending,
			VideoURL:    upload.VideoURL,
			PhotoURLs:   upload.PhotoURLs,
			DefectNotes: upload.DefectNotes,
			DefectCount: upload.DefectCount,
			UploadedBy:  actor.ID,
			CreatedAt:   op.At,
		}
		if err := op.SaveQCRecord(record); err != nil {
			return err
		}

		from := order.State
		order.RecordQCUpload(stage, op.At)
		if order.State != from {
			op.Record(domain.EventOrderState, string(from), string(order.State), fmt.Sprintf("%s QC uploaded", stage))
		}
		op.Record(domain.EventQC, "", string(domain.QCPending), fmt.Sprintf("%s QC %s uploaded", stage, record.ID))
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.Lifecycle.Metrics.RecordQCUpload(string(stage))
	return record, nil
}
