package confs

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the application settings that are not database related;
// the db package reads its own connection variables.
type Config struct {
	Port          string
	SessionSecret string
	LogLevel      string
	TemplatesGlob string
}

// LoadConfig loads environment variables from a .env file if present
// and returns the resolved configuration.
func LoadConfig() (*Config, error) {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		// Session cookies are signed with this key; a known key lets
		// anyone forge an authenticated session.
		if getEnv("APP_ENV", "development") == "production" {
			return nil, fmt.Errorf("SESSION_SECRET is required when APP_ENV is production")
		}
		log.Println("warning: SESSION_SECRET is not set, using the insecure development default")
		secret = "dev-secret-key-change-in-production"
	}

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		SessionSecret: secret,
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		TemplatesGlob: getEnv("TEMPLATES_GLOB", "templates/*.html"),
	}
	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
