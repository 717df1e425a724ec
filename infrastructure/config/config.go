package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// Persistence
	DatabasePath string // empty selects the in-memory store

	// Bible text source
	BibleAPIURL      string // empty selects the embedded translation
	BibleAPITimeout  time.Duration
	BibleCacheTTL    time.Duration
	BibleTranslation string

	// Logging
	LogLevel string

	// Authentication
	JWTSecret string
	JWTIssuer string

	// Feature flags
	EnableMetrics   bool
	EnableCORS      bool
	EnableAnalytics bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),

		DatabasePath: getEnv("DATABASE_PATH", "leavn.db"),

		BibleAPIURL:      getEnv("BIBLE_API_URL", ""),
		BibleAPITimeout:  getEnvDuration("BIBLE_API_TIMEOUT", 10*time.Second),
		BibleCacheTTL:    getEnvDuration("BIBLE_CACHE_TTL", time.Hour),
		BibleTranslation: getEnv("BIBLE_TRANSLATION", "WEB"),

		LogLevel: getEnv("LOG_LEVEL", "info"),

		JWTSecret: getEnv("JWT_SECRET", ""),
		JWTIssuer: getEnv("JWT_ISSUER", "leavn-api"),

		EnableMetrics:   getEnvBool("ENABLE_METRICS", true),
		EnableCORS:      getEnvBool("ENABLE_CORS", true),
		EnableAnalytics: getEnvBool("ENABLE_ANALYTICS", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.Environment == "production" {
		if c.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET is required in production")
		}
		if c.DatabasePath == "" {
			return fmt.Errorf("DATABASE_PATH is required in production")
		}
	}
	if c.BibleAPITimeout <= 0 {
		return fmt.Errorf("BIBLE_API_TIMEOUT must be positive")
	}
	return nil
}

// IsDevelopment checks if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvDuration gets a duration environment variable with a default value
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
