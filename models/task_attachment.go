package models

import (
	"time"
)

// TaskAttachment references a stored file attached to a task. FilePath is the
// relative date-bucketed path inside the permanent store ("20250131/name.pdf"),
// never an absolute path.
type TaskAttachment struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	TaskID    string    `json:"taskId" gorm:"type:uuid;not null;index"`
	FileName  string    `json:"fileName" gorm:"type:varchar(255);not null"`
	FilePath  string    `json:"filePath" gorm:"type:varchar(512);not null"`
	CreatedBy string    `json:"createdBy" gorm:"type:uuid;not null"`
	CreatedAt time.Time `json:"createdAt"`
	Status    byte      `json:"status" gorm:"type:smallint;not null;default:1"`
}
