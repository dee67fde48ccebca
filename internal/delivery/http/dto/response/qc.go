package response

import (
	"time"

	"github.com/prabindersinghh/leorit-order-service/internal/domain"
)

type QCRecordResponse struct {
	ID             string          `json:"id"`
	OrderID        string          `json:"order_id"`
	Stage          domain.QCStage  `json:"stage"`
	Status         domain.QCStatus `json:"status"`
	VideoURL       string          `json:"video_url"`
	PhotoURLs      []string        `json:"photo_urls"`
	DefectNotes    string          `json:"defect_notes,omitempty"`
	DefectCount    int             `json:"defect_count"`
	UploadedBy     string          `json:"uploaded_by"`
	DecidedBy      string          `json:"decided_by,omitempty"`
	DecisionReason string          `json:"decision_reason,omitempty"`
	AdminDecision  domain.QCStatus `json:"admin_decision,omitempty"`
	DecidedAt      *time.Time      `json:"decided_at,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

func FromQCRecord(r *domain.QCRecord) QCRecordResponse {
	photos := r.PhotoURLs
	if photos == nil {
		photos = []string{}
	}
	return QCRecordResponse{
		ID:             r.ID,
		OrderID:        r.OrderID,
		Stage:          r.Stage,
		Status:         r.Status,
		VideoURL:       r.VideoURL,
		PhotoURLs:      photos,
		DefectNotes:    r.DefectNotes,
		DefectCount:    r.DefectCount,
		UploadedBy:     r.UploadedBy,
		DecidedBy:      r.DecidedBy,
		DecisionReason: r.DecisionReason,
		AdminDecision:  r.AdminDecision,
		DecidedAt:      r.DecidedAt,
		CreatedAt:      r.CreatedAt,
	}
}

func FromQCRecords(records []*domain.QCRecord) []QCRecordResponse {
	out := make([]QCRecordResponse, 0, len(records))
	for _, r := range records {
		out = append(out, FromQCRecord(r))
	}
	return out
}
