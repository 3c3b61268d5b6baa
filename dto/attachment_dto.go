package dto

// AttachmentResponse is one attachment in a response graph. FilePath carries
// the retrieval URL, never the stored file path.
type AttachmentResponse struct {
	ID       int64  `json:"id"`
	TaskID   string `json:"taskId"`
	FileName string `json:"fileName"`
	FilePath string `json:"filePath"`
}

// AttachmentListResponse wraps an attachment listing
type AttachmentListResponse struct {
	TaskAttachments []AttachmentResponse `json:"taskAttachments"`
}

// CreateTaskAttachmentRequest confirms a previously uploaded file as a task
// attachment. FilePath is the relative staged path returned by the upload
// endpoint ("20250131/20250131_uuid.pdf").
type CreateTaskAttachmentRequest struct {
	TaskID   string `json:"taskId" binding:"required"`
	FileName string `json:"fileName" binding:"required"`
	FilePath string `json:"filePath" binding:"required"`
}

// UpdateTaskAttachmentRequest replaces the staged file and/or display name
type UpdateTaskAttachmentRequest struct {
	FileName *string `json:"fileName"`
	FilePath *string `json:"filePath"`
}

// UploadResponse is returned by the multipart upload endpoint
type UploadResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	FileName string `json:"fileName,omitempty"`
	Path     string `json:"path,omitempty"`
}
