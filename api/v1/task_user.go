package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/taskboard-api/dto"
	"github.com/taskboard-api/services"
)

// AssignmentController handles task assignment API endpoints
type AssignmentController struct {
	assignmentService *services.AssignmentService
}

// NewAssignmentController creates a new assignment controller
func NewAssignmentController(assignmentService *services.AssignmentService) *AssignmentController {
	return &AssignmentController{assignmentService: assignmentService}
}

// ListTaskUsers retrieves assignment rows visible to the caller
func (c *AssignmentController) ListTaskUsers(ctx *gin.Context) {
	filter := dto.TaskUserFilter{
		TaskID: ctx.Query("taskId"),
		UserID: ctx.Query("userId"),
	}

	assignments, err := c.assignmentService.List(currentActor(ctx), filter)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":   true,
		"taskUsers": assignments,
	})
}

// CreateTaskUser assigns a user to a task
func (c *AssignmentController) CreateTaskUser(ctx *gin.Context) {
	var req dto.CreateTaskUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	assignment, err := c.assignmentService.Create(currentActor(ctx), req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"taskUser": assignment,
	})
}

// DeleteTaskUser removes one assignment row
func (c *AssignmentController) DeleteTaskUser(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid id",
		})
		return
	}

	if err := c.assignmentService.Delete(currentActor(ctx), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "TaskUser deleted successfully",
	})
}
