package v1

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/taskboard-api/dto"
	"github.com/taskboard-api/services"
)

// ProjectController handles project-related API endpoints
type ProjectController struct {
	projectService *services.ProjectService
}

// NewProjectController creates a new project controller
func NewProjectController(projectService *services.ProjectService) *ProjectController {
	return &ProjectController{projectService: projectService}
}

// ListProjects retrieves the projects visible to the caller, filtered and
// paginated via query parameters.
func (c *ProjectController) ListProjects(ctx *gin.Context) {
	actor := currentActor(ctx)
	filter := parseProjectFilter(ctx)

	response, err := c.projectService.List(actor, filter)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":    true,
		"projects":   response.Projects,
		"page":       response.Page,
		"pageSize":   response.PageSize,
		"totalCount": response.TotalCount,
	})
}

// GetProject retrieves one project with its requested expansions and a
// filtered, sorted, paginated task page.
func (c *ProjectController) GetProject(ctx *gin.Context) {
	filter := parseProjectFilter(ctx)
	taskFilter := parseTaskFilter(ctx)

	response, err := c.projectService.Get(ctx.Param("id"), filter, taskFilter)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success":        true,
		"project":        response.Project,
		"taskPage":       response.TaskPage,
		"taskPageSize":   response.TaskPageSize,
		"totalTaskCount": response.TotalTaskCount,
	})
}

// CreateProject creates a project owned by the caller
func (c *ProjectController) CreateProject(ctx *gin.Context) {
	var req dto.CreateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	project, err := c.projectService.Create(currentActor(ctx), req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"project": project,
	})
}

// UpdateProject applies a partial-field patch to a project
func (c *ProjectController) UpdateProject(ctx *gin.Context) {
	var req dto.UpdateProjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	project, err := c.projectService.Update(currentActor(ctx), ctx.Param("id"), req)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"project": project,
	})
}

// DeleteProject removes a project and everything under it
func (c *ProjectController) DeleteProject(ctx *gin.Context) {
	if err := c.projectService.Delete(ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Project deleted successfully",
	})
}

func parseProjectFilter(ctx *gin.Context) dto.ProjectFilter {
	filter := dto.ProjectFilter{
		ProjectName: ctx.Query("projectName"),
		MemberName:  ctx.Query("memberName"),
		Priority:    ctx.Query("priority"),
		Page:        queryInt(ctx, "page"),
		PageSize:    queryInt(ctx, "pageSize"),
	}
	if modules := ctx.Query("modules"); modules != "" {
		for _, m := range strings.Split(modules, ",") {
			if m = strings.TrimSpace(m); m != "" {
				filter.Modules = append(filter.Modules, m)
			}
		}
	}
	return filter
}

func parseTaskFilter(ctx *gin.Context) *dto.TaskFilter {
	filter := &dto.TaskFilter{
		Title:        ctx.Query("title"),
		DueFrom:      queryDate(ctx, "dueFrom"),
		DueTo:        queryDate(ctx, "dueTo"),
		Priority:     ctx.Query("taskPriority"),
		AssigneeName: ctx.Query("assigneeName"),
		SortBy:       ctx.Query("sortBy"),
		SortOrder:    ctx.Query("sortOrder"),
		Page:         queryInt(ctx, "taskPage"),
		PageSize:     queryInt(ctx, "taskPageSize"),
	}
	return filter
}

func queryInt(ctx *gin.Context, name string) int {
	value, err := strconv.Atoi(ctx.Query(name))
	if err != nil {
		return 0
	}
	return value
}

// queryDate accepts RFC 3339 timestamps and plain dates.
func queryDate(ctx *gin.Context, name string) *time.Time {
	raw := ctx.Query(name)
	if raw == "" {
		return nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return &t
	}
	return nil
}
