package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskboard-api/dto"
	"github.com/taskboard-api/services"
)

// TaskController handles task-related API endpoints
type TaskController struct {
	taskService *services.TaskService
}

// NewTaskController creates a new task controller
func NewTaskController(taskService *services.TaskService) *TaskController {
	return &TaskController{taskService: taskService}
}

// ListTasks retrieves tasks visible to the caller, optionally limited to one
// project via the projectId query parameter.
func (c *TaskController) ListTasks(ctx *gin.Context) {
	tasks, err := c.taskService.List(currentActor(ctx), ctx.Query("projectId"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":      true,
		"projectTasks": tasks,
	})
}

// GetTask retrieves one task
func (c *TaskController) GetTask(ctx *gin.Context) {
	task, err := c.taskService.Get(currentActor(ctx), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":     true,
		"projectTask": task,
	})
}

// CreateTask creates a task under a project
func (c *TaskController) CreateTask(ctx *gin.Context) {
	var req dto.CreateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	task, err := c.taskService.Create(currentActor(ctx), req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"projectTask": task,
	})
}

// UpdateTask applies a partial-field patch to a task
func (c *TaskController) UpdateTask(ctx *gin.Context) {
	var req dto.UpdateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	task, err := c.taskService.Update(currentActor(ctx), ctx.Param("id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":     true,
		"projectTask": task,
	})
}

// DeleteTask removes a task and its dependents
func (c *TaskController) DeleteTask(ctx *gin.Context) {
	if err := c.taskService.Delete(currentActor(ctx), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Project task deleted successfully",
	})
}
