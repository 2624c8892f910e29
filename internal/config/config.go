package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// Config holds everything the process needs, read once at startup and
// injected into the components that use it.
type Config struct {
	Port            string
	JWTSecret       string
	AdminEmail      string
	UploadDir       string
	RateLimitWindow time.Duration
	RateLimitMax    int
	Database        Database
}

// Database holds the connection string and pool settings.
type Database struct {
	URL         string
	MaxOpen     int
	MaxIdle     int
	MaxLifetime time.Duration
}

// Load reads configuration from the environment. A missing JWT_SECRET or
// DATABASE_URL is an error; the process must not start without them.
func Load() (*Config, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	window, err := time.ParseDuration(getenv("RATE_LIMIT_WINDOW", "15m"))
	if err != nil {
		return nil, err
	}

	maxAttempts, err := strconv.Atoi(getenv("RATE_LIMIT_MAX", "5"))
	if err != nil {
		return nil, err
	}

	maxOpen, _ := strconv.Atoi(getenv("DB_MAX_OPEN", "25"))
	maxIdle, _ := strconv.Atoi(getenv("DB_MAX_IDLE", "25"))
	lifetime, _ := strconv.Atoi(getenv("DB_MAX_LIFETIME", "300")) // seconds

	return &Config{
		Port:            getenv("PORT", "4000"),
		JWTSecret:       secret,
		AdminEmail:      os.Getenv("ADMIN_EMAIL"),
		UploadDir:       getenv("UPLOAD_DIR", "public/uploads"),
		RateLimitWindow: window,
		RateLimitMax:    maxAttempts,
		Database: Database{
			URL:         databaseURL,
			MaxOpen:     maxOpen,
			MaxIdle:     maxIdle,
			MaxLifetime: time.Duration(lifetime) * time.Second,
		},
	}, nil
}

// helper to read env with default
func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
