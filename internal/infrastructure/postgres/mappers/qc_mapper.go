package mappers

import (
	"github.com/lib/pq"
	"github.com/prabindersinghh/leorit-order-service/internal/domain"
	"github.com/prabindersinghh/leorit-order-service/internal/infrastructure/postgres/models"
)

func ToDomainQCRecord(model *models.OrderQCModel) *domain.QCRecord {
	return &domain.QCRecord{
		ID:             model.ID,
		OrderID:        model.OrderID,
		Stage:          domain.QCStage(model.Stage),
		Status:         domain.QCStatus(model.Status),
		VideoURL:       model.VideoURL,
		PhotoURLs:      append([]string{}, model.PhotoURLs...),
		DefectNotes:    model.DefectNotes,
		DefectCount:    model.DefectCount,
		UploadedBy:     model.UploadedBy,
		DecidedBy:      model.DecidedBy,
		DecidedByRole:  domain.Role(model.DecidedByRole),
		DecisionReason: model.DecisionReason,
		AdminDecision:  domain.QCStatus(model.AdminDecision),
		DecidedAt:      model.DecidedAt,
		CreatedAt:      model.CreatedAt,
	}
}

func ToGORMQCRecord(rec *domain.QCRecord) *models.OrderQCModel {
	// photo_urls is NOT NULL; a nil array would be written as NULL.
	photoURLs := pq.StringArray{}
	if len(rec.PhotoURLs) > 0 {
		photoURLs = pq.StringArray(rec.PhotoURLs)
	}
	return &models.OrderQCModel{
		ID:             rec.ID,
		OrderID:        rec.OrderID,
		Stage:          string(rec.Stage),
		Status:         string(rec.Status),
		VideoURL:       rec.VideoURL,
		PhotoURLs:      photoURLs,
		DefectNotes:    rec.DefectNotes,
		DefectCount:    rec.DefectCount,
		UploadedBy:     rec.UploadedBy,
		DecidedBy:      rec.DecidedBy,
		DecidedByRole:  string(rec.DecidedByRole),
		DecisionReason: rec.DecisionReason,
		AdminDecision:  string(rec.AdminDecision),
		DecidedAt:      rec.DecidedAt,
		CreatedAt:      rec.CreatedAt,
	}
}
