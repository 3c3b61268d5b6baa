package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/taskboard-api/dto"
	"github.com/taskboard-api/services"
	"github.com/taskboard-api/storage"
)

// AttachmentController handles task attachment API endpoints, including the
// multipart upload and the file retrieval stream.
type AttachmentController struct {
	attachmentService *services.AttachmentService
	store             *storage.Store
}

// NewAttachmentController creates a new attachment controller
func NewAttachmentController(attachmentService *services.AttachmentService, store *storage.Store) *AttachmentController {
	return &AttachmentController{attachmentService: attachmentService, store: store}
}

// Upload stages a multipart file and returns its relative path. The client
// echoes the path back when confirming the attachment.
func (c *AttachmentController) Upload(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.UploadResponse{
			Success: false,
			Message: "A file is required.",
		})
		return
	}

	src, err := file.Open()
	if err != nil {
		respondError(ctx, err)
		return
	}
	defer src.Close()

	relPath, err := c.attachmentService.StageUpload(file.Filename, src)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UploadResponse{
		Success:  true,
		Message:  "File uploaded successfully",
		FileName: file.Filename,
		Path:     relPath,
	})
}

// ListTaskAttachments retrieves the attachments of one task
func (c *AttachmentController) ListTaskAttachments(ctx *gin.Context) {
	attachments, err := c.attachmentService.ListByTask(currentActor(ctx), ctx.Query("taskId"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":         true,
		"taskAttachments": attachments,
	})
}

// CreateTaskAttachment confirms a staged upload as a task attachment
func (c *AttachmentController) CreateTaskAttachment(ctx *gin.Context) {
	var req dto.CreateTaskAttachmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	attachment, err := c.attachmentService.Create(currentActor(ctx), req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success":        true,
		"taskAttachment": attachment,
	})
}

// UpdateTaskAttachment patches an attachment's name and/or replaces its file
func (c *AttachmentController) UpdateTaskAttachment(ctx *gin.Context) {
	id, ok := attachmentID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateTaskAttachmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	attachment, err := c.attachmentService.Update(currentActor(ctx), id, req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":        true,
		"taskAttachment": attachment,
	})
}

// DeleteTaskAttachment removes an attachment row and its stored file
func (c *AttachmentController) DeleteTaskAttachment(ctx *gin.Context) {
	id, ok := attachmentID(ctx)
	if !ok {
		return
	}

	if err := c.attachmentService.Delete(currentActor(ctx), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "TaskAttachment deleted successfully",
	})
}

// GetFile streams the stored file of one attachment. Images and PDFs render
// inline; everything else downloads under the attachment's display name.
func (c *AttachmentController) GetFile(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Query("attachmentId"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid attachmentId",
		})
		return
	}

	attachment, err := c.attachmentService.Get(currentActor(ctx), id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	absPath, err := c.store.Resolve(attachment.FilePath)
	if err != nil {
		respondError(ctx, services.ErrAttachmentNotFound)
		return
	}

	contentType := storage.ContentType(attachment.FileName)
	disposition := "attachment"
	if storage.InlineDisposition(contentType) {
		disposition = "inline"
	}

	ctx.Header("Content-Type", contentType)
	ctx.Header("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, attachment.FileName))
	ctx.File(absPath)
}

func attachmentID(ctx *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid id",
		})
		return 0, false
	}
	return id, true
}
