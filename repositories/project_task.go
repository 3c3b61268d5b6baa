package repositories

import (
	"errors"

	"github.com/taskboard-api/database"
	"github.com/taskboard-api/models"
	"gorm.io/gorm"
)

// projectTaskRepository handles database operations for project tasks
type projectTaskRepository struct{}

// NewProjectTaskRepository creates a new task repository instance
func NewProjectTaskRepository() ProjectTaskRepository {
	return &projectTaskRepository{}
}

// GetAll retrieves all active tasks, newest first
func (r *projectTaskRepository) GetAll() ([]models.ProjectTask, error) {
	var tasks []models.ProjectTask
	result := database.DB.
		Where("status = ?", models.StatusActive).
		Order("created_at DESC").
		Find(&tasks)
	return tasks, result.Error
}

// GetByProjectID retrieves the active tasks under one project, newest first
func (r *projectTaskRepository) GetByProjectID(projectID string) ([]models.ProjectTask, error) {
	var tasks []models.ProjectTask
	result := database.DB.
		Where("project_id = ? AND status = ?", projectID, models.StatusActive).
		Order("created_at DESC").
		Find(&tasks)
	return tasks, result.Error
}

// GetByID retrieves a task by its ID, nil when missing
func (r *projectTaskRepository) GetByID(id string) (*models.ProjectTask, error) {
	var task models.ProjectTask
	result := database.DB.First(&task, "id = ? AND status = ?", id, models.StatusActive)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &task, nil
}

// Create inserts a new task into the database
func (r *projectTaskRepository) Create(task *models.ProjectTask) error {
	return database.DB.Create(task).Error
}

// Update modifies an existing task
func (r *projectTaskRepository) Update(task *models.ProjectTask) error {
	return database.DB.Save(task).Error
}

// Delete removes a task row; no-op when the row does not exist
func (r *projectTaskRepository) Delete(id string) error {
	return database.DB.Delete(&models.ProjectTask{}, "id = ?", id).Error
}

// DeleteByProjectID removes all task rows under a project in one statement
func (r *projectTaskRepository) DeleteByProjectID(projectID string) error {
	return database.DB.Delete(&models.ProjectTask{}, "project_id = ?", projectID).Error
}
