package services

import (
	"time"

	"github.com/taskboard-api/dto"
	"github.com/taskboard-api/models"
	"github.com/taskboard-api/repositories"
)

// CommentService handles business logic for task comments
type CommentService struct {
	repos  *repositories.Registry
	access *AccessChecker
}

// NewCommentService creates a new comment service instance
func NewCommentService(repos *repositories.Registry, access *AccessChecker) *CommentService {
	return &CommentService{repos: repos, access: access}
}

// ListByTask retrieves the comments of one task, membership-gated, each
// enriched with the commenting user's display name.
func (s *CommentService) ListByTask(actor dto.Actor, taskID string) ([]dto.CommentResponse, error) {
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

	comments, err := s.repos.Comments.GetByTaskID(taskID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.CommentResponse, 0, len(comments))
	for _, c := range comments {
		name := "Unknown"
		user, err := s.repos.Users.GetByID(c.UserID)
		if err != nil {
			return nil, err
		}
		if user != nil {
			name = user.Username
		}
		responses = append(responses, dto.CommentResponse{
			ID:        c.ID,
			TaskID:    c.TaskID,
			UserID:    c.UserID,
			UserName:  name,
			Comment:   c.Comment,
			CreatedAt: c.CreatedAt,
		})
	}
	return responses, nil
}

// Create adds a comment to a task on behalf of the actor, membership-gated.
func (s *CommentService) Create(actor dto.Actor, req dto.CreateTaskCommentRequest) (*models.TaskComment, error) {
	if req.TaskID == "" || req.Comment == "" {
		return nil, invalidInput("TaskId and Comment are required.")
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

	comment := models.TaskComment{
		TaskID:    req.TaskID,
		UserID:    actor.UserID,
		Comment:   req.Comment,
		CreatedBy: actor.UserID,
		CreatedAt: time.Now().UTC(),
		Status:    models.StatusActive,
	}
	if err := s.repos.Comments.Create(&comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// Delete removes one comment. Only the comment's author or an Administrator
// may delete it.
func (s *CommentService) Delete(actor dto.Actor, commentID int64) error {
	comment, err := s.repos.Comments.GetByID(commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}

	if comment.UserID != actor.UserID && !actor.IsAdministrator() {
		return ErrAccessDenied
	}

	return s.repos.Comments.Delete(commentID)
}
