package qcdto

type UploadQCInput struct {
	OrderID     string
	Stage       string
	VideoURL    string
	PhotoURLs   []string
	DefectNotes string
	DefectCount int
}
