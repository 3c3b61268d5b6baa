package dto

import (
	"time"
)

// Module names a caller may request in project reads to expand the nested
// response graph.
const (
	ModuleTasks           = "Tasks"
	ModuleTaskUsers       = "TaskUser"
	ModuleTaskAttachments = "TaskAttachment"
	ModuleTaskComments    = "TaskComment"
	ModuleProjectUsers    = "ProjectUser"
)

// ProjectFilter represents filter criteria for the project list
type ProjectFilter struct {
	ProjectName string
	MemberName  string
	Priority    string
	Modules     []string
	Page        int
	PageSize    int
}

// HasModule reports whether the caller asked for the named expansion.
func (f ProjectFilter) HasModule(name string) bool {
	for _, m := range f.Modules {
		if m == name {
			return true
		}
	}
	return false
}

// TaskFilter represents the task-level filters applied inside a single
// project's detail view. Sorting defaults to ascending by title.
type TaskFilter struct {
	Title        string
	DueFrom      *time.Time
	DueTo        *time.Time
	Priority     string
	AssigneeName string
	SortBy       string
	SortOrder    string
	Page         int
	PageSize     int
}

// CreateProjectRequest represents the request payload for creating a project
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Remarks     string `json:"remarks"`
}

// UpdateProjectRequest represents a partial-field project patch
type UpdateProjectRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Remarks     *string `json:"remarks"`
}

// ProjectResponse is one project in a nested response graph. The optional
// slices are populated only when the matching module was requested.
type ProjectResponse struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Remarks      string           `json:"remarks,omitempty"`
	CreatedBy    string           `json:"createdBy,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
	ProjectTasks []TaskResponse   `json:"projectTasks,omitempty"`
	ProjectUsers []MemberResponse `json:"projectUsers,omitempty"`
}

// ProjectListResponse represents the paginated project list
type ProjectListResponse struct {
	Projects   []ProjectResponse `json:"projects"`
	Page       int               `json:"page"`
	PageSize   int               `json:"pageSize"`
	TotalCount int               `json:"totalCount"`
}

// ProjectDetailResponse represents one project with its task page
type ProjectDetailResponse struct {
	Project        ProjectResponse `json:"project"`
	TaskPage       int             `json:"taskPage"`
	TaskPageSize   int             `json:"taskPageSize"`
	TotalTaskCount int             `json:"totalTaskCount"`
}
