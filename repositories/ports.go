package repositories

import (
	"github.com/taskboard-api/models"
)

// The repository interfaces are the seams between the services and the
// backing store. The gorm-backed gateways in this package implement them in
// production; the service tests substitute in-memory fakes.
//
// All listing methods return active rows only (status = models.StatusActive)
// and perform no validation beyond existence; that is the caller's job.
// GetByID returns (nil, nil) for a missing row.

// ProjectRepository is the CRUD gateway for projects.
type ProjectRepository interface {
	GetAll() ([]models.Project, error)
	GetByID(id string) (*models.Project, error)
	Create(project *models.Project) error
	Update(project *models.Project) error
	Delete(id string) error
}

// ProjectTaskRepository is the CRUD gateway for tasks.
type ProjectTaskRepository interface {
	GetAll() ([]models.ProjectTask, error)
	GetByProjectID(projectID string) ([]models.ProjectTask, error)
	GetByID(id string) (*models.ProjectTask, error)
	Create(task *models.ProjectTask) error
	Update(task *models.ProjectTask) error
	Delete(id string) error
	DeleteByProjectID(projectID string) error
}

// ProjectUserRepository is the CRUD gateway for membership rows.
type ProjectUserRepository interface {
	GetByProjectID(projectID string) ([]models.ProjectUser, error)
	GetByUserID(userID string) ([]models.ProjectUser, error)
	Find(projectID, userID string) (*models.ProjectUser, error)
	GetByID(id int64) (*models.ProjectUser, error)
	Create(membership *models.ProjectUser) error
	Delete(id int64) error
	DeleteByProjectID(projectID string) error
}

// TaskUserRepository is the CRUD gateway for assignment rows.
type TaskUserRepository interface {
	GetAll() ([]models.TaskUser, error)
	GetByTaskID(taskID string) ([]models.TaskUser, error)
	GetByUserID(userID string) ([]models.TaskUser, error)
	Find(taskID, userID string) (*models.TaskUser, error)
	GetByID(id int64) (*models.TaskUser, error)
	Create(assignment *models.TaskUser) error
	Delete(id int64) error
	DeleteByTaskIDs(taskIDs []string) error
}

// TaskAttachmentRepository is the CRUD gateway for attachment rows.
type TaskAttachmentRepository interface {
	GetByTaskID(taskID string) ([]models.TaskAttachment, error)
	GetByTaskIDs(taskIDs []string) ([]models.TaskAttachment, error)
	GetByID(id int64) (*models.TaskAttachment, error)
	Create(attachment *models.TaskAttachment) error
	Update(attachment *models.TaskAttachment) error
	Delete(id int64) error
	DeleteByTaskIDs(taskIDs []string) error
}

// TaskCommentRepository is the CRUD gateway for comment rows.
type TaskCommentRepository interface {
	GetByTaskID(taskID string) ([]models.TaskComment, error)
	GetByID(id int64) (*models.TaskComment, error)
	Create(comment *models.TaskComment) error
	Delete(id int64) error
	DeleteByTaskIDs(taskIDs []string) error
}

// UserRepository is the gateway into the identity store.
type UserRepository interface {
	GetAll() ([]models.User, error)
	GetByID(id string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Create(user *models.User) error
	Update(user *models.User) error
	Delete(id string) error
}
