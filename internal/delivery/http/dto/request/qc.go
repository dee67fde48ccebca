package request

import qcdto "github.com/prabindersinghh/leorit-order-service/internal/usecase/dto/qc"

type UploadQCRequest struct {
	Stage       string   `json:"stage" binding:"required"`
	VideoURL    string   `json:"video_url"`
	PhotoURLs   []string `json:"photo_urls"`
	DefectNotes string   `json:"defect_notes"`
	DefectCount int      `json:"defect_count"`
}

func (r *UploadQCRequest) ToInput(orderID string) *qcdto.UploadQCInput {
	return &qcdto.UploadQCInput{
		OrderID:     orderID,
		Stage:       r.Stage,
		VideoURL:    r.VideoURL,
		PhotoURLs:   r.PhotoURLs,
		DefectNotes: r.DefectNotes,
		DefectCount: r.DefectCount,
	}
}

// ReasonRequest is the body of rejections, revision requests and refunds.
type ReasonRequest struct {
	Reason string `json:"reason"`
}
