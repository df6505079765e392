// internal/config/config.go
package config

import (
	"os"
	"time"
)

type AppConfig struct {
	// Server
	HTTPAddr string

	// Postgres
	DatabaseURL string

	// Redis
	RedisAddr string
	RedisPass string

	// Sessions
	JWTSecret  string
	SessionTTL time.Duration

	// Object storage
	StorageURL    string
	StorageBucket string
	StorageKey    string
}

// Load loads environment variables into AppConfig.
func Load() AppConfig {
	return AppConfig{
		HTTPAddr:    getEnv("HTTP_ADDR", ":8000"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:   getEnv("REDIS_PASS", ""),

		JWTSecret:  getEnv("JWT_SECRET", "dev-only-secret"),
		SessionTTL: getEnvDuration("SESSION_TTL", 12*time.Hour),

		StorageURL:    getEnv("STORAGE_URL", ""),
		StorageBucket: getEnv("STORAGE_BUCKET", "vehicle-images"),
		StorageKey:    getEnv("STORAGE_KEY", ""),
	}
}

// --- Helper functions ---

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
