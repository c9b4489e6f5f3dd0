package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the planner services
type Config struct {
	// Database
	SQLiteDatabase string
	DatabaseURL    string

	// HTTP API
	Environment    string
	Port           string
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// Load reads configuration from environment variables with sensible defaults
func Load() *Config {
	return &Config{
		// Database
		SQLiteDatabase: getEnv("SQLITE_DATABASE", "./metro.db"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),

		// HTTP API
		Environment:    getEnv("ENVIRONMENT", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
		RequestTimeout: time.Duration(getEnvInt("REQUEST_TIMEOUT_SECS", 15)) * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
