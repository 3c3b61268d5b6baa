package repositories

import (
	"errors"

	"github.com/taskboard-api/database"
	"github.com/taskboard-api/models"
	"gorm.io/gorm"
)

// taskUserRepository handles database operations for assignment rows
type taskUserRepository struct{}

// NewTaskUserRepository creates a new assignment repository instance
func NewTaskUserRepository() TaskUserRepository {
	return &taskUserRepository{}
}

func (r *taskUserRepository) GetAll() ([]models.TaskUser, error) {
	var assignments []models.TaskUser
	result := database.DB.Where("status = ?", models.StatusActive).Find(&assignments)
	return assignments, result.Error
}

func (r *taskUserRepository) GetByTaskID(taskID string) ([]models.TaskUser, error) {
	var assignments []models.TaskUser
	result := database.DB.
		Where("task_id = ? AND status = ?", taskID, models.StatusActive).
		Find(&assignments)
	return assignments, result.Error
}

func (r *taskUserRepository) GetByUserID(userID string) ([]models.TaskUser, error) {
	var assignments []models.TaskUser
	result := database.DB.
		Where("user_id = ? AND status = ?", userID, models.StatusActive).
		Find(&assignments)
	return assignments, result.Error
}

// Find returns the active assignment row for a (task, user) pair, nil when
// none exists
func (r *taskUserRepository) Find(taskID, userID string) (*models.TaskUser, error) {
	var assignment models.TaskUser
	result := database.DB.First(&assignment,
		"task_id = ? AND user_id = ? AND status = ?", taskID, userID, models.StatusActive)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &assignment, nil
}

func (r *taskUserRepository) GetByID(id int64) (*models.TaskUser, error) {
	var assignment models.TaskUser
	result := database.DB.First(&assignment, "id = ? AND status = ?", id, models.StatusActive)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &assignment, nil
}

func (r *taskUserRepository) Create(assignment *models.TaskUser) error {
	return database.DB.Create(assignment).Error
}

func (r *taskUserRepository) Delete(id int64) error {
	return database.DB.Delete(&models.TaskUser{}, "id = ?", id).Error
}

// DeleteByTaskIDs removes all assignment rows of the given tasks in one
// statement
func (r *taskUserRepository) DeleteByTaskIDs(taskIDs []string) error {
	if len(taskIDs) == 0 {
		return nil
	}
	return database.DB.Delete(&models.TaskUser{}, "task_id IN ?", taskIDs).Error
}
