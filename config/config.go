// Package config centralises environment configuration for the application.
// File: config/config.go
package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds every value the application reads from the environment.
// All values have localhost-friendly defaults so the app runs out of the
// box against a local backend.
type Config struct {
	// ListenAddr is the address the web server binds to, e.g. ":8080".
	ListenAddr string

	// BackendBaseURL is the origin of the REST backend. API calls go to
	// BackendBaseURL + "/api/..."; relative image paths resolve against it.
	BackendBaseURL string

	// SessionSecret signs the session cookie.
	SessionSecret string

	// ContactNumber is the outbound WhatsApp number for contact deep links.
	ContactNumber string

	// PlaceholderImageURL is shown whenever an entity has no resolvable image.
	PlaceholderImageURL string

	// Env is "production", "staging" or "development"; controls debug logging.
	Env string
}

// Load reads configuration from the environment. A .env file is honoured
// when present but its absence is not an error.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		ListenAddr:          getenv("LISTEN_ADDR", ":8080"),
		BackendBaseURL:      getenv("BACKEND_BASE_URL", "http://localhost:5000"),
		SessionSecret:       getenv("SESSION_SECRET", "dev-secret-change-me"),
		ContactNumber:       getenv("CONTACT_NUMBER", "+94771234567"),
		PlaceholderImageURL: getenv("PLACEHOLDER_IMAGE_URL", "https://via.placeholder.com/400x256?text=No+Image"),
		Env:                 getenv("APP_ENV", "development"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
