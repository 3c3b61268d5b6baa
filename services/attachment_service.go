package services

import (
	"io"
	"log"
	"strings"

	"github.com/taskboard-api/dto"
	"github.com/taskboard-api/models"
	"github.com/taskboard-api/repositories"
)

// AttachmentService handles business logic for task attachments
type AttachmentService struct {
	repos  *repositories.Registry
	files  FileStore
	access *AccessChecker
}

// NewAttachmentService creates a new attachment service instance
func NewAttachmentService(repos *repositories.Registry, files FileStore, access *AccessChecker) *AttachmentService {
	return &AttachmentService{repos: repos, files: files, access: access}
}

// StageUpload writes an uploaded file into the temporary area. The returned
// path is what clients echo back in CreateTaskAttachmentRequest.FilePath.
func (s *AttachmentService) StageUpload(originalName string, src io.Reader) (string, error) {
	if originalName == "" {
		return "", invalidInput("A file is required.")
	}
	return s.files.Stage(originalName, src)
}

// ListByTask retrieves the attachments of one task, membership-gated.
func (s *AttachmentService) ListByTask(actor dto.Actor, taskID string) ([]dto.AttachmentResponse, error) {
	task, err := s.repos.Tasks.GetByID(taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}

	if err := s.access.RequireProjectAccess(actor, task.ProjectID); err != nil {
		return nil, err
	}

	attachments, err := s.repos.Attachments.GetByTaskID(taskID)
	if err != nil {
		return nil, err
	}
	responses := make([]dto.AttachmentResponse, 0, len(attachments))
	for _, a := range attachments {
		responses = append(responses, attachmentResponse(a))
	}
	return responses, nil
}

// Get retrieves one attachment row, membership-gated through its task.
func (s *AttachmentService) Get(actor dto.Actor, attachmentID int64) (*models.TaskAttachment, error) {
	attachment, err := s.repos.Attachments.GetByID(attachmentID)
	if err != nil {
		return nil, err
	}
	if attachment == nil {
		return nil, ErrAttachmentNotFound
	}

	task, err := s.repos.Tasks.GetByID(attachment.TaskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrRelatedTaskNotFound
	}

	if err := s.access.RequireProjectAccess(actor, task.ProjectID); err != nil {
		return nil, err
	}
	return attachment, nil
}

// Create confirms a staged upload as a task attachment: the staged file is
// promoted into permanent storage and the row is persisted.
func (s *AttachmentService) Create(actor dto.Actor, req dto.CreateTaskAttachmentRequest) (*models.TaskAttachment, error) {
	if req.TaskID == "" || req.FileName == "" || req.FilePath == "" {
		return nil, invalidInput("TaskId, FileName and FilePath are required.")
	}
	if !validRelPath(req.FilePath) {
		return nil, invalidInput("Invalid file path.")
	}

	task, err := s.repos.Tasks.GetByID(req.TaskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrRelatedTaskNotFound
	}

	if err := s.access.RequireProjectAccess(actor, task.ProjectID); err != nil {
		return nil, err
	}

	if err := s.files.Promote(req.FilePath); err != nil {
		return nil, err
	}

	attachment := models.TaskAttachment{
		TaskID:    req.TaskID,
		FileName:  req.FileName,
		FilePath:  req.FilePath,
		CreatedBy: actor.UserID,
		Status:    models.StatusActive,
	}
	if err := s.repos.Attachments.Create(&attachment); err != nil {
		return nil, err
	}
	return &attachment, nil
}

// Update patches an attachment's display name and/or replaces its file with a
// newly staged upload.
func (s *AttachmentService) Update(actor dto.Actor, attachmentID int64, req dto.UpdateTaskAttachmentRequest) (*models.TaskAttachment, error) {
	attachment, err := s.Get(actor, attachmentID)
	if err != nil {
		return nil, err
	}

	if req.FileName != nil && *req.FileName != "" {
		attachment.FileName = *req.FileName
	}
	if req.FilePath != nil && *req.FilePath != "" && *req.FilePath != attachment.FilePath {
		if !validRelPath(*req.FilePath) {
			return nil, invalidInput("Invalid file path.")
		}
		if err := s.files.Promote(*req.FilePath); err != nil {
			return nil, err
		}
		if err := s.files.Remove(attachment.FilePath); err != nil {
			log.Printf("Warning: file deletion failed for attachment %d (%s): %v", attachment.ID, attachment.FilePath, err)
		}
		attachment.FilePath = *req.FilePath
	}

	if err := s.repos.Attachments.Update(attachment); err != nil {
		return nil, err
	}
	return attachment, nil
}

// Delete removes an attachment row and best-effort deletes its stored file.
func (s *AttachmentService) Delete(actor dto.Actor, attachmentID int64) error {
	attachment, err := s.Get(actor, attachmentID)
	if err != nil {
		return err
	}

	if attachment.FilePath != "" {
		if err := s.files.Remove(attachment.FilePath); err != nil {
			log.Printf("Warning: file deletion failed for attachment %d (%s): %v", attachment.ID, attachment.FilePath, err)
		}
	}
	return s.repos.Attachments.Delete(attachmentID)
}

func attachmentResponse(a models.TaskAttachment) dto.AttachmentResponse {
	return dto.AttachmentResponse{
		ID:       a.ID,
		TaskID:   a.TaskID,
		FileName: a.FileName,
		FilePath: AttachmentURL(a.ID),
	}
}

// validRelPath accepts exactly the two-segment date-bucketed layout the store
// produces and rejects traversal attempts.
func validRelPath(relPath string) bool {
	segments := strings.Split(relPath, "/")
	if len(segments) != 2 {
		return false
	}
	for _, seg := range segments {
		if seg == "" || seg == "." || seg == ".." || strings.Contains(seg, "\\") {
			return false
		}
	}
	return true
}
