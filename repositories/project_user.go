package repositories

import (
	"errors"

	"github.com/taskboard-api/database"
	"github.com/taskboard-api/models"
	"gorm.io/gorm"
)

// projectUserRepository handles database operations for membership rows
type projectUserRepository struct{}

// NewProjectUserRepository creates a new membership repository instance
func NewProjectUserRepository() ProjectUserRepository {
	return &projectUserRepository{}
}

func (r *projectUserRepository) GetByProjectID(projectID string) ([]models.ProjectUser, error) {
	var memberships []models.ProjectUser
	result := database.DB.
		Where("project_id = ? AND status = ?", projectID, models.StatusActive).
		Find(&memberships)
	return memberships, result.Error
}

func (r *projectUserRepository) GetByUserID(userID string) ([]models.ProjectUser, error) {
	var memberships []models.ProjectUser
	result := database.DB.
		Where("user_id = ? AND status = ?", userID, models.StatusActive).
		Find(&memberships)
	return memberships, result.Error
}

// Find returns the active membership row for a (project, user) pair, nil when
// none exists
func (r *projectUserRepository) Find(projectID, userID string) (*models.ProjectUser, error) {
	var membership models.ProjectUser
	result := database.DB.First(&membership,
		"project_id = ? AND user_id = ? AND status = ?", projectID, userID, models.StatusActive)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &membership, nil
}

func (r *projectUserRepository) GetByID(id int64) (*models.ProjectUser, error) {
	var membership models.ProjectUser
	result := database.DB.First(&membership, "id = ? AND status = ?", id, models.StatusActive)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &membership, nil
}

func (r *projectUserRepository) Create(membership *models.ProjectUser) error {
	return database.DB.Create(membership).Error
}

func (r *projectUserRepository) Delete(id int64) error {
	return database.DB.Delete(&models.ProjectUser{}, "id = ?", id).Error
}

// DeleteByProjectID removes all membership rows of a project in one statement
func (r *projectUserRepository) DeleteByProjectID(projectID string) error {
	return database.DB.Delete(&models.ProjectUser{}, "project_id = ?", projectID).Error
}
