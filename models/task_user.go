package models

import (
	"time"
)

// TaskUser is the assignment join row linking a user to a task
type TaskUser struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	TaskID    string    `json:"taskId" gorm:"type:uuid;not null;index"`
	UserID    string    `json:"userId" gorm:"type:uuid;not null;index"`
	CreatedBy string    `json:"createdBy" gorm:"type:uuid;not null"`
	CreatedAt time.Time `json:"createdAt"`
	Status    byte      `json:"status" gorm:"type:smallint;not null;default:1"`
}
