package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/taskboard-api/middleware"
	"github.com/taskboard-api/services"
	"github.com/taskboard-api/storage"
)

// Dependencies bundles the services the v1 API is built on.
type Dependencies struct {
	Auth        *services.AuthService
	Users       *services.UserService
	Projects    *services.ProjectService
	Tasks       *services.TaskService
	Memberships *services.MembershipService
	Assignments *services.AssignmentService
	Attachments *services.AttachmentService
	Comments    *services.CommentService
	Denylist    *services.TokenDenylist
	Store       *storage.Store
}

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup, deps Dependencies) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	authController := NewAuthController(deps.Auth)
	userController := NewUserController(deps.Users)
	projectController := NewProjectController(deps.Projects)
	taskController := NewTaskController(deps.Tasks)
	membershipController := NewMembershipController(deps.Memberships)
	assignmentController := NewAssignmentController(deps.Assignments)
	attachmentController := NewAttachmentController(deps.Attachments, deps.Store)
	commentController := NewCommentController(deps.Comments)

	requireAuth := middleware.AuthMiddleware(deps.Denylist)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", authController.Register)
		authGroup.POST("/login", authController.Login)
		authGroup.POST("/logout", requireAuth, authController.Logout)
		authGroup.GET("/me", requireAuth, authController.GetCurrentUser)
	}

	// Everything below requires a valid token
	authed := router.Group("")
	authed.Use(requireAuth)

	projectGroup := authed.Group("/projects")
	{
		projectGroup.GET("", projectController.ListProjects)
		projectGroup.POST("", projectController.CreateProject)
		projectGroup.GET("/:id", projectController.GetProject)
		projectGroup.PUT("/:id", projectController.UpdateProject)
		projectGroup.DELETE("/:id", projectController.DeleteProject)
	}

	taskGroup := authed.Group("/tasks")
	{
		taskGroup.GET("", taskController.ListTasks)
		taskGroup.POST("", taskController.CreateTask)
		taskGroup.GET("/:id", taskController.GetTask)
		taskGroup.PUT("/:id", taskController.UpdateTask)
		taskGroup.DELETE("/:id", taskController.DeleteTask)
	}

	membershipGroup := authed.Group("/project-users")
	{
		membershipGroup.GET("", membershipController.ListProjectUsers)
		membershipGroup.POST("", membershipController.CreateProjectUser)
		membershipGroup.DELETE("/:id", membershipController.DeleteProjectUser)
	}

	assignmentGroup := authed.Group("/task-users")
	{
		assignmentGroup.GET("", assignmentController.ListTaskUsers)
		assignmentGroup.POST("", assignmentController.CreateTaskUser)
		assignmentGroup.DELETE("/:id", assignmentController.DeleteTaskUser)
	}

	attachmentGroup := authed.Group("/attachments")
	{
		attachmentGroup.POST("/upload", attachmentController.Upload)
		attachmentGroup.GET("/file", attachmentController.GetFile)
		attachmentGroup.GET("", attachmentController.ListTaskAttachments)
		attachmentGroup.POST("", attachmentController.CreateTaskAttachment)
		attachmentGroup.PATCH("/:id", attachmentController.UpdateTaskAttachment)
		attachmentGroup.DELETE("/:id", attachmentController.DeleteTaskAttachment)
	}

	commentGroup := authed.Group("/comments")
	{
		commentGroup.GET("", commentController.ListTaskComments)
		commentGroup.POST("", commentController.CreateTaskComment)
		commentGroup.DELETE("/:id", commentController.DeleteTaskComment)
	}

	// Account management is Administrator-only
	userGroup := authed.Group("/users")
	userGroup.Use(middleware.AdminMiddleware())
	{
		userGroup.GET("", userController.ListUsers)
		userGroup.POST("", userController.CreateUser)
		userGroup.GET("/:id", userController.GetUser)
		userGroup.PUT("/:id", userController.UpdateUser)
		userGroup.DELETE("/:id", userController.DeleteUser)
	}
}
