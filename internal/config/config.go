package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config chứa toàn bộ application configuration
// Struct này được populate từ environment variables
type Config struct {
	App       AppConfig
	Log       LogConfig
	Books     CatalogConfig
	Authors   CatalogConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
	Popular   PopularConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type LogConfig struct {
	Level string // debug, info, warn, error
}

// CatalogConfig - one upstream catalog service
type CatalogConfig struct {
	BaseURL string
	Secret  string
	Timeout time.Duration
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type RateLimitConfig struct {
	Backend string  // memory, redis
	RPS     float64 // memory backend: tokens per second
	Burst   int     // memory backend: bucket size; redis backend: requests per window
	Window  time.Duration
}

type PopularConfig struct {
	File string // optional YAML table, built-in table when empty
}

// Load đọc config từ environment variables
func Load() (*Config, error) {
	timeout := time.Duration(getEnvInt("CATALOG_TIMEOUT_SECONDS", 10)) * time.Second

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Bookstore Search API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8000"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Books: CatalogConfig{
			BaseURL: getEnv("BOOKS_SERVICE_BASE_URL", ""),
			Secret:  getEnv("BOOKS_SERVICE_SECRET", ""),
			Timeout: timeout,
		},
		Authors: CatalogConfig{
			BaseURL: getEnv("AUTHORS_SERVICE_BASE_URL", ""),
			Secret:  getEnv("AUTHORS_SERVICE_SECRET", ""),
			Timeout: timeout,
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		RateLimit: RateLimitConfig{
			Backend: getEnv("RATE_LIMIT_BACKEND", "memory"),
			RPS:     getEnvFloat("RATE_LIMIT_RPS", 20),
			Burst:   getEnvInt("RATE_LIMIT_BURST", 40),
			Window:  time.Duration(getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 1)) * time.Second,
		},
		Popular: PopularConfig{
			File: getEnv("POPULAR_SEARCHES_FILE", ""),
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate kiểm tra config có hợp lệ không
func (c *Config) Validate() error {
	switch c.App.Environment {
	case "development", "staging", "production":
	default:
		return fmt.Errorf("APP_ENV must be development, staging or production, got %q", c.App.Environment)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be debug, info, warn or error, got %q", c.Log.Level)
	}

	if c.Books.BaseURL == "" {
		return fmt.Errorf("BOOKS_SERVICE_BASE_URL is not configured")
	}
	if c.Authors.BaseURL == "" {
		return fmt.Errorf("AUTHORS_SERVICE_BASE_URL is not configured")
	}
	if c.Books.Timeout <= 0 || c.Authors.Timeout <= 0 {
		return fmt.Errorf("CATALOG_TIMEOUT_SECONDS must be positive")
	}

	switch c.RateLimit.Backend {
	case "memory", "redis":
	default:
		return fmt.Errorf("RATE_LIMIT_BACKEND must be memory or redis, got %q", c.RateLimit.Backend)
	}
	if c.RateLimit.Burst < 1 {
		return fmt.Errorf("RATE_LIMIT_BURST must be at least 1")
	}
	if c.RateLimit.Backend == "memory" && c.RateLimit.RPS <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be positive")
	}
	if c.RateLimit.Backend == "redis" && c.RateLimit.Window <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW_SECONDS must be positive")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}
