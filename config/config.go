package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv loads environment variables from .env file
func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}
}

// GetEnv gets an environment variable or returns a default value if not present
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// AttachmentConfig describes where uploaded files live. Uploads are staged
// under TempDir and moved under StoreDir when the attachment row is created;
// both trees share the same named subfolder and date-bucketed layout.
type AttachmentConfig struct {
	TempDir  string
	StoreDir string
	Folder   string
}

// AttachmentPaths reads the attachment storage configuration.
func AttachmentPaths() AttachmentConfig {
	return AttachmentConfig{
		TempDir:  GetEnv("ATTACHMENT_TEMP_DIR", "./uploads/tmp"),
		StoreDir: GetEnv("ATTACHMENT_STORE_DIR", "./uploads/store"),
		Folder:   GetEnv("ATTACHMENT_FOLDER", "attachments"),
	}
}
