package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskboard-api/dto"
	"github.com/taskboard-api/services"
)

// AuthController handles registration, login and logout endpoints
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new auth controller
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register handles user registration
func (c *AuthController) Register(ctx *gin.Context) {
	var req dto.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	user, err := c.authService.Register(req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	user.Password = ""
	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"user":    user,
	})
}

// Login handles user authentication
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	authResponse, err := c.authService.Login(req)
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Invalid credentials",
		})
		return
	}

	// Also set the token as an HttpOnly cookie for browser clients.
	ctx.SetCookie(
		"access_token",
		authResponse.Token,
		int(services.TokenLifetime.Seconds()),
		"/",
		"",
		false,
		true,
	)

	ctx.JSON(http.StatusOK, gin.H{
		"success":   true,
		"token":     authResponse.Token,
		"expiresAt": authResponse.ExpiresAt,
		"user":      authResponse.User,
	})
}

// Logout revokes the presented token and clears the cookie
func (c *AuthController) Logout(ctx *gin.Context) {
	if token, ok := ctx.Get("token"); ok {
		if tokenString, ok := token.(string); ok {
			if err := c.authService.Logout(ctx.Request.Context(), tokenString); err != nil {
				respondError(ctx, err)
				return
			}
		}
	}

	ctx.SetCookie("access_token", "", -1, "/", "", false, true)
	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out successfully",
	})
}

// GetCurrentUser returns the authenticated caller's identity
func (c *AuthController) GetCurrentUser(ctx *gin.Context) {
	actor := currentActor(ctx)
	email, _ := ctx.Get("email")
	ctx.JSON(http.StatusOK, gin.H{
		"success":  true,
		"id":       actor.UserID,
		"username": actor.Username,
		"email":    email,
		"roles":    actor.Roles,
	})
}
