package main

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/taskboard-api/client"
	"github.com/taskboard-api/config"
)

// The web front-end is a thin relay: it forwards every /api request to the
// taskboard API with the caller's token attached and returns the reply
// unchanged. Browser sessions keep the token in the access_token cookie.
func main() {
	config.LoadEnv()

	gin.SetMode(config.GetEnv("GIN_MODE", gin.ReleaseMode))

	api := client.NewAPIClient(config.GetEnv("API_BASE_URL", "http://localhost:8080"))

	router := gin.Default()

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "taskboard-web",
		})
	})

	router.Any("/api/*path", func(c *gin.Context) {
		resp, err := api.Do(
			c.Request.Method,
			c.Request.URL.Path,
			c.Request.URL.RawQuery,
			relayToken(c),
			c.Request.Body,
		)
		if err != nil {
			log.Printf("Relay failure on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
			c.JSON(http.StatusOK, gin.H{
				"success": false,
				"message": "The service is temporarily unavailable.",
			})
			return
		}
		c.Data(resp.StatusCode, resp.ContentType, resp.Body)
	})

	port := config.GetEnv("WEB_PORT", "3000")
	log.Printf("Taskboard web starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func relayToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	if cookie, err := c.Cookie("access_token"); err == nil {
		return cookie
	}
	return ""
}
