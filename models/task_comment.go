package models

import (
	"time"
)

// TaskComment is a free-text note attached to a task by a user.
// Comments are never updated, only created and deleted.
type TaskComment struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	TaskID    string    `json:"taskId" gorm:"type:uuid;not null;index"`
	UserID    string    `json:"userId" gorm:"type:uuid;not null;index"`
	Comment   string    `json:"comment" gorm:"type:varchar(1000);not null"`
	CreatedBy string    `json:"createdBy" gorm:"type:uuid;not null"`
	CreatedAt time.Time `json:"createdAt"`
	Status    byte      `json:"status" gorm:"type:smallint;not null;default:1"`
}
