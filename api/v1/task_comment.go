package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/taskboard-api/dto"
	"github.com/taskboard-api/services"
)

// CommentController handles task comment API endpoints
type CommentController struct {
	commentService *services.CommentService
}

// NewCommentController creates a new comment controller
func NewCommentController(commentService *services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// ListTaskComments retrieves the comments of one task
func (c *CommentController) ListTaskComments(ctx *gin.Context) {
	comments, err := c.commentService.ListByTask(currentActor(ctx), ctx.Query("taskId"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":      true,
		"taskComments": comments,
	})
}

// CreateTaskComment adds a comment to a task
func (c *CommentController) CreateTaskComment(ctx *gin.Context) {
	var req dto.CreateTaskCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	comment, err := c.commentService.Create(currentActor(ctx), req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"taskComment": comment,
	})
}

// DeleteTaskComment removes one comment
func (c *CommentController) DeleteTaskComment(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid id",
		})
		return
	}

	if err := c.commentService.Delete(currentActor(ctx), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "TaskComment deleted successfully",
	})
}
