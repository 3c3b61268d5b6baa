package repositories

import (
	"errors"

	"github.com/taskboard-api/database"
	"github.com/taskboard-api/models"
	"gorm.io/gorm"
)

// taskAttachmentRepository handles database operations for attachment rows
type taskAttachmentRepository struct{}

// NewTaskAttachmentRepository creates a new attachment repository instance
func NewTaskAttachmentRepository() TaskAttachmentRepository {
	return &taskAttachmentRepository{}
}

func (r *taskAttachmentRepository) GetByTaskID(taskID string) ([]models.TaskAttachment, error) {
	var attachments []models.TaskAttachment
	result := database.DB.
		Where("task_id = ? AND status = ?", taskID, models.StatusActive).
		Find(&attachments)
	return attachments, result.Error
}

func (r *taskAttachmentRepository) GetByTaskIDs(taskIDs []string) ([]models.TaskAttachment, error) {
	if len(taskIDs) == 0 {
		return nil, nil
	}
	var attachments []models.TaskAttachment
	result := database.DB.
		Where("task_id IN ? AND status = ?", taskIDs, models.StatusActive).
		Find(&attachments)
	return attachments, result.Error
}

func (r *taskAttachmentRepository) GetByID(id int64) (*models.TaskAttachment, error) {
	var attachment models.TaskAttachment
	result := database.DB.First(&attachment, "id = ? AND status = ?", id, models.StatusActive)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return &attachment, nil
}

func (r *taskAttachmentRepository) Create(attachment *models.TaskAttachment) error {
	return database.DB.Create(attachment).Error
}

func (r *taskAttachmentRepository) Update(attachment *models.TaskAttachment) error {
	return database.DB.Save(attachment).Error
}

func (r *taskAttachmentRepository) Delete(id int64) error {
	return database.DB.Delete(&models.TaskAttachment{}, "id = ?", id).Error
}

// DeleteByTaskIDs removes all attachment rows of the given tasks in one
// statement
func (r *taskAttachmentRepository) DeleteByTaskIDs(taskIDs []string) error {
	if len(taskIDs) == 0 {
		return nil
	}
	return database.DB.Delete(&models.TaskAttachment{}, "task_id IN ?", taskIDs).Error
}
