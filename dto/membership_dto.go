package dto

// MemberResponse is a user reference inside a nested response graph
type MemberResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ProjectUserResponse is one membership row
type ProjectUserResponse struct {
	ID        int64  `json:"id"`
	ProjectID string `json:"projectId"`
	UserID    string `json:"userId"`
}

// ProjectUserListResponse wraps a membership listing
type ProjectUserListResponse struct {
	ProjectUsers []ProjectUserResponse `json:"projectUsers"`
}

// CreateProjectUserRequest adds a user to a project
type CreateProjectUserRequest struct {
	ProjectID string `json:"projectId" binding:"required"`
	UserID    string `json:"userId" binding:"required"`
}

// TaskUserResponse is one assignment row
type TaskUserResponse struct {
	ID     int64  `json:"id"`
	TaskID string `json:"taskId"`
	UserID string `json:"userId"`
}

// TaskUserListResponse wraps an assignment listing
type TaskUserListResponse struct {
	TaskUsers []TaskUserResponse `json:"taskUsers"`
}

// CreateTaskUserRequest assigns a user to a task
type CreateTaskUserRequest struct {
	TaskID string `json:"taskId" binding:"required"`
	UserID string `json:"userId" binding:"required"`
}

// TaskUserFilter narrows an assignment listing to one task or one user
type TaskUserFilter struct {
	TaskID string
	UserID string
}
