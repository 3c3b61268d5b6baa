package models

import (
	"time"
)

// Role represents user role types
type Role string

const (
	RoleAdministrator Role = "Administrator"
	RoleRegisterUser  Role = "RegisterUser"
)

// User represents an account in the system
type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"` // Password is not exposed in JSON
	Role      Role      `json:"role" gorm:"type:varchar(20);default:'RegisterUser'"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// IsAdministrator reports whether the user carries the Administrator role.
func (u *User) IsAdministrator() bool {
	return u.Role == RoleAdministrator
}
