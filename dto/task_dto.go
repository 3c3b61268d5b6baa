package dto

import (
	"time"

	"github.com/taskboard-api/models"
)

// TaskResponse is one task in a nested response graph
type TaskResponse struct {
	ID              string                `json:"id"`
	ProjectID       string                `json:"projectId"`
	Title           string                `json:"title"`
	Description     string                `json:"description"`
	StartDate       *time.Time            `json:"startDate"`
	DueDate         *time.Time            `json:"dueDate"`
	ProgressStatus  models.ProgressStatus `json:"progressStatus"`
	PriorityStatus  models.PriorityStatus `json:"priorityStatus"`
	CreatedBy       string                `json:"createdBy,omitempty"`
	TaskUsers       []MemberResponse      `json:"taskUsers,omitempty"`
	TaskAttachments []AttachmentResponse  `json:"taskAttachments,omitempty"`
	TaskComments    []CommentResponse     `json:"taskComments,omitempty"`
}

// TaskListResponse represents a flat task listing
type TaskListResponse struct {
	ProjectTasks []TaskResponse `json:"projectTasks"`
}

// CreateTaskRequest represents the request payload for creating a task
type CreateTaskRequest struct {
	ProjectID      string                `json:"projectId" binding:"required"`
	Title          string                `json:"title" binding:"required"`
	Description    string                `json:"description"`
	StartDate      *time.Time            `json:"startDate"`
	DueDate        *time.Time            `json:"dueDate"`
	ProgressStatus models.ProgressStatus `json:"progressStatus"`
	PriorityStatus models.PriorityStatus `json:"priorityStatus"`
}

// UpdateTaskRequest represents a partial-field task patch
type UpdateTaskRequest struct {
	Title          *string                `json:"title"`
	Description    *string                `json:"description"`
	StartDate      *time.Time             `json:"startDate"`
	DueDate        *time.Time             `json:"dueDate"`
	ProgressStatus *models.ProgressStatus `json:"progressStatus"`
	PriorityStatus *models.PriorityStatus `json:"priorityStatus"`
}
