package models

type UploadStatus string

const (
	UploadPending   UploadStatus = "pending"
	UploadCompleted UploadStatus = "completed"
)

// Preupload is a compressed copy of a picked image, kept on disk until it is
// posted or discarded.
type Preupload struct {
	LocalPath    string
	SourcePath   string
	UploadStatus UploadStatus
}
