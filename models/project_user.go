package models

import (
	"time"
)

// ProjectUser is the membership join row granting a user visibility and
// participation in a project. At most one active row exists per
// (project, user) pair; the check lives in the membership service.
type ProjectUser struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	ProjectID string    `json:"projectId" gorm:"type:uuid;not null;index"`
	UserID    string    `json:"userId" gorm:"type:uuid;not null;index"`
	CreatedBy string    `json:"createdBy" gorm:"type:uuid;not null"`
	CreatedAt time.Time `json:"createdAt"`
	Status    byte      `json:"status" gorm:"type:smallint;not null;default:1"`
}
