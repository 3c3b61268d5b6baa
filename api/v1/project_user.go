package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/taskboard-api/dto"
	"github.com/taskboard-api/services"
)

// MembershipController handles project membership API endpoints
type MembershipController struct {
	membershipService *services.MembershipService
}

// NewMembershipController creates a new membership controller
func NewMembershipController(membershipService *services.MembershipService) *MembershipController {
	return &MembershipController{membershipService: membershipService}
}

// ListProjectUsers retrieves memberships for one project or one user
func (c *MembershipController) ListProjectUsers(ctx *gin.Context) {
	memberships, err := c.membershipService.List(ctx.Query("projectId"), ctx.Query("userId"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":      true,
		"projectUsers": memberships,
	})
}

// CreateProjectUser adds a user to a project
func (c *MembershipController) CreateProjectUser(ctx *gin.Context) {
	var req dto.CreateProjectUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	membership, err := c.membershipService.Create(currentActor(ctx), req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"projectUser": membership,
	})
}

// DeleteProjectUser removes one membership row
func (c *MembershipController) DeleteProjectUser(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid id",
		})
		return
	}

	if err := c.membershipService.Delete(id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "ProjectUser deleted successfully",
	})
}
