package v1

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/taskboard-api/dto"
	"github.com/taskboard-api/services"
)

// currentActor reads the identity AuthMiddleware loaded into the request
// context.
func currentActor(ctx *gin.Context) dto.Actor {
	actor := dto.Actor{}
	if v, ok := ctx.Get("userId"); ok {
		actor.UserID, _ = v.(string)
	}
	if v, ok := ctx.Get("username"); ok {
		actor.Username, _ = v.(string)
	}
	if v, ok := ctx.Get("roles"); ok {
		actor.Roles, _ = v.([]string)
	}
	return actor
}

var domainErrors = []error{
	services.ErrProjectNotFound,
	services.ErrTaskNotFound,
	services.ErrRelatedTaskNotFound,
	services.ErrAttachmentNotFound,
	services.ErrCommentNotFound,
	services.ErrProjectUserNotFound,
	services.ErrTaskUserNotFound,
	services.ErrUserNotFound,
	services.ErrAccessDenied,
	services.ErrNotAuthorizedAssign,
	services.ErrNotAuthorizedDelete,
	services.ErrAssigneeNotMember,
	services.ErrAlreadyAssigned,
	services.ErrAlreadyProjectMember,
	services.ErrEmailExists,
	services.ErrUsernameTaken,
	services.ErrInvalidInput,
}

// respondError maps a service failure onto the wire. Domain failures travel
// as 200 {"success":false,"message":...} with their message verbatim;
// anything else is logged and surfaced as a generic 500.
func respondError(ctx *gin.Context, err error) {
	for _, domain := range domainErrors {
		if errors.Is(err, domain) {
			ctx.JSON(http.StatusOK, gin.H{
				"success": false,
				"message": err.Error(),
			})
			return
		}
	}

	log.Printf("Unexpected error on %s %s: %v", ctx.Request.Method, ctx.Request.URL.Path, err)
	ctx.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": "An unexpected error occurred.",
	})
}
