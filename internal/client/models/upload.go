package models

// UploadStatus is the lifecycle state of one upload task.
// Transitions: pending -> uploading -> complete | error. The terminal
// states are final.
type UploadStatus string

const (
	UploadPending   UploadStatus = "pending"
	UploadUploading UploadStatus = "uploading"
	UploadComplete  UploadStatus = "complete"
	UploadError     UploadStatus = "error"
)

// Terminal reports whether the status admits no further transitions.
func (s UploadStatus) Terminal() bool {
	return s == UploadComplete || s == UploadError
}

// UploadTask is a snapshot of one in-flight or finished upload. Tasks are
// identified by a generated id, never by their position in the task list.
type UploadTask struct {
	ID       string
	FileName string
	// Progress is a percentage in [0,100], non-decreasing while the task
	// is uploading.
	Progress int
	Status   UploadStatus
}

// UploadInput describes a file handed to the coordinator for upload.
type UploadInput struct {
	Name      string
	MimeType  string
	SizeBytes int64
}
