package main

import (
	"log"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	v1 "github.com/taskboard-api/api/v1"
	"github.com/taskboard-api/config"
	"github.com/taskboard-api/database"
	"github.com/taskboard-api/repositories"
	"github.com/taskboard-api/services"
	"github.com/taskboard-api/storage"
)

func main() {
	config.LoadEnv()

	// Set Gin mode
	gin.SetMode(config.GetEnv("GIN_MODE", gin.ReleaseMode))

	database.Initialize()
	database.SeedAdministrator()

	// Token revocation needs Redis; without it logout is a no-op.
	var redisClient *redis.Client
	if addr := config.GetEnv("REDIS_ADDR", ""); addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: config.GetEnv("REDIS_PASSWORD", ""),
		})
	} else {
		log.Println("Warning: REDIS_ADDR not set, token revocation disabled")
	}
	denylist := services.NewTokenDenylist(redisClient)

	paths := config.AttachmentPaths()
	store := storage.NewStore(
		filepath.Join(paths.TempDir, paths.Folder),
		filepath.Join(paths.StoreDir, paths.Folder),
	)

	repos := repositories.NewRegistry()
	access := services.NewAccessChecker(repos.Memberships)

	deps := v1.Dependencies{
		Auth:        services.NewAuthService(repos.Users, denylist),
		Users:       services.NewUserService(repos.Users),
		Projects:    services.NewProjectService(repos, store, access),
		Tasks:       services.NewTaskService(repos, store, access),
		Memberships: services.NewMembershipService(repos),
		Assignments: services.NewAssignmentService(repos, access),
		Attachments: services.NewAttachmentService(repos, store, access),
		Comments:    services.NewCommentService(repos, access),
		Denylist:    denylist,
		Store:       store,
	}

	// Abandoned staged uploads are purged nightly.
	cleaner := services.NewUploadCleaner(store, 7*24*time.Hour)
	if err := cleaner.Start(); err != nil {
		log.Fatalf("Failed to start upload cleaner: %v", err)
	}
	defer cleaner.Stop()

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	v1.RegisterRoutes(router.Group("/api/v1"), deps)

	port := config.GetEnv("PORT", "8080")
	log.Printf("Taskboard API starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
