package repositories

import (
	"errors"

	"github.com/taskboard-api/database"
	"github.com/taskboard-api/models"
	"gorm.io/gorm"
)

// projectRepository handles database operations for projects
type projectRepository struct{}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository() ProjectRepository {
	return &projectRepository{}
}

// GetAll retrieves all active projects, newest first
func (r *projectRepository) GetAll() ([]models.Project, error) {
	var projects []models.Project
	result := database.DB.
		Where("status = ?", models.StatusActive).
		Order("created_at DESC").
		Find(&projects)
	return projects, result.Error
}

// GetByID retrieves a project by its ID, nil when missing
func (r *projectRepository) GetByID(id string) (*models.Project, error) {
	var project models.Project
	result := database.DB.First(&project, "id = ? AND status = ?", id, models.StatusActive)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &project, nil
}

// Create inserts a new project into the database
func (r *projectRepository) Create(project *models.Project) error {
	return database.DB.Create(project).Error
}

// Update modifies an existing project
func (r *projectRepository) Update(project *models.Project) error {
	return database.DB.Save(project).Error
}

// Delete removes a project row; no-op when the row does not exist
func (r *projectRepository) Delete(id string) error {
	return database.DB.Delete(&models.Project{}, "id = ?", id).Error
}
