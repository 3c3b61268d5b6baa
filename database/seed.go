package database

import (
	"log"

	"github.com/taskboard-api/config"
	"github.com/taskboard-api/models"
	"golang.org/x/crypto/bcrypt"
)

// SeedAdministrator ensures the built-in Administrator account exists.
// Safe to run on every startup.
func SeedAdministrator() {
	username := config.GetEnv("ADMIN_USERNAME", "admin")
	email := config.GetEnv("ADMIN_EMAIL", "admin@taskboard.local")
	password := config.GetEnv("ADMIN_PASSWORD", "Admin@123")

	var existing models.User
	result := DB.Where("role = ?", models.RoleAdministrator).First(&existing)
	if result.RowsAffected > 0 {
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash administrator password: %v", err)
		return
	}

	admin := models.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
		Role:     models.RoleAdministrator,
	}

	if err := DB.Create(&admin).Error; err != nil {
		log.Printf("Failed to seed administrator account: %v", err)
		return
	}

	log.Printf("✅ Seeded administrator account %q", username)
}
