package dto

import (
	"time"
)

// CommentResponse is one comment enriched with the commenting user's display
// name resolved from the identity store at response time.
type CommentResponse struct {
	ID        int64     `json:"id"`
	TaskID    string    `json:"taskId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// CommentListResponse wraps a comment listing
type CommentListResponse struct {
	TaskComments []CommentResponse `json:"taskComments"`
}

// CreateTaskCommentRequest adds a comment to a task
type CreateTaskCommentRequest struct {
	TaskID  string `json:"taskId" binding:"required"`
	Comment string `json:"comment" binding:"required"`
}
