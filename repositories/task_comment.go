package repositories

import (
	"errors"

	"github.com/taskboard-api/database"
	"github.com/taskboard-api/models"
	"gorm.io/gorm"
)

// taskCommentRepository handles database operations for comment rows
type taskCommentRepository struct{}

// NewTaskCommentRepository creates a new comment repository instance
func NewTaskCommentRepository() TaskCommentRepository {
	return &taskCommentRepository{}
}

func (r *taskCommentRepository) GetByTaskID(taskID string) ([]models.TaskComment, error) {
	var comments []models.TaskComment
	result := database.DB.
		Where("task_id = ? AND status = ?", taskID, models.StatusActive).
		Order("created_at ASC").
		Find(&comments)
	return comments, result.Error
}

func (r *taskCommentRepository) GetByID(id int64) (*models.TaskComment, error) {
	var comment models.TaskComment
	result := database.DB.First(&comment, "id = ? AND status = ?", id, models.StatusActive)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &comment, nil
}

func (r *taskCommentRepository) Create(comment *models.TaskComment) error {
	return database.DB.Create(comment).Error
}

func (r *taskCommentRepository) Delete(id int64) error {
	return database.DB.Delete(&models.TaskComment{}, "id = ?", id).Error
}

// DeleteByTaskIDs removes all comment rows of the given tasks in one statement
func (r *taskCommentRepository) DeleteByTaskIDs(taskIDs []string) error {
	if len(taskIDs) == 0 {
		return nil
	}
	return database.DB.Delete(&models.TaskComment{}, "task_id IN ?", taskIDs).Error
}
