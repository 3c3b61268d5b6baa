package dto

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/taskboard-api/models"
)

// TokenClaims represents our custom JWT claims
type TokenClaims struct {
	Username string   `json:"username"`
	Email    string   `json:"email"`
	Roles    []string `json:"roles"`
	jwt.RegisteredClaims
}

// LoginRequest represents login credentials. Username accepts either the
// account's username or its email address.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents registration data
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// AuthResponse represents the response after authentication
type AuthResponse struct {
	Token     string      `json:"token"`
	User      models.User `json:"user"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

// Actor identifies the authenticated caller of an operation.
type Actor struct {
	UserID   string
	Username string
	Roles    []string
}

// IsAdministrator reports whether the actor carries the Administrator role.
func (a Actor) IsAdministrator() bool {
	for _, r := range a.Roles {
		if r == string(models.RoleAdministrator) {
			return true
		}
	}
	return false
}
