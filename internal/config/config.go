package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	ServerPort string
	GinMode    string
	LogLevel   string
	LogFormat  string
	RedisURL   string
	// AuthBaseURL is the base URL of the external authentication service
	// that validates credentials and issues the opaque staff token.
	AuthBaseURL string
	AuthTimeout time.Duration
	// SessionTTL bounds how long a persisted session survives in Redis.
	// Upstream token expiry is the auth service's concern and surfaces only
	// as a failed API call there.
	SessionTTL time.Duration
	// LoginRatePerMinute caps login attempts per client IP.
	LoginRatePerMinute int
	// AllowedOrigins controls HTTP CORS for the staff portal SPA.
	// Empty slice means all origins are permitted (dev default).
	AllowedOrigins []string
}

// Load reads configuration from environment variables with sensible defaults.
// It loads .env file if present but does not fail if missing.
func Load() *Config {
	_ = godotenv.Load() // Ignore error — .env is optional

	return &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		GinMode:            getEnv("GIN_MODE", "debug"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFormat:          getEnv("LOG_FORMAT", "pretty"),
		RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379/0"),
		AuthBaseURL:        getEnv("AUTH_BASE_URL", "http://localhost:9090"),
		AuthTimeout:        time.Duration(getEnvInt("AUTH_TIMEOUT_SECONDS", 10)) * time.Second,
		SessionTTL:         time.Duration(getEnvInt("SESSION_TTL_HOURS", 24)) * time.Hour,
		LoginRatePerMinute: getEnvInt("LOGIN_RATE_PER_MINUTE", 30),
		AllowedOrigins:     parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// parseOrigins splits a comma-separated origins string into a trimmed slice.
// Returns nil (allow-all) if the input is empty.
func parseOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
