package models

import (
	"time"
)

// StatusActive is the sentinel value marking a row as active.
const StatusActive byte = 1

// Project represents a top-level container owning tasks and a member list
type Project struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name        string     `json:"name" gorm:"type:varchar(50);not null"`
	Description string     `json:"description" gorm:"type:varchar(200);default:null"`
	Remarks     string     `json:"remarks" gorm:"type:varchar(100);default:null"`
	CreatedBy   string     `json:"createdBy" gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedBy   string     `json:"updatedBy" gorm:"type:uuid;default:null"`
	UpdatedAt   *time.Time `json:"updatedAt"`
	Status      byte       `json:"status" gorm:"type:smallint;not null;default:1"`
}
