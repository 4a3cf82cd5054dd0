package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/hirewire/hirewire/pkg/jwtx"
)

type Config struct {
	TokenSecret []byte        // Required: HS256 signing key material (≥32 bytes)
	TokenTTL    time.Duration // Optional: access-token lifetime (default: 3600s)
	HashCost    int           // Optional: bcrypt work factor (default: 12)

	Issuer              string        // Optional: issuer claim for tokens (default: hirewire-auth)
	DatabaseFile        string        // Optional: path to SQLite database file (default: ./auth.db)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		TokenSecret:         []byte(os.Getenv("TOKEN_SECRET")),
		TokenTTL:            getEnvSecondsOrDefault("TOKEN_TTL_SECONDS", time.Hour),
		HashCost:            getEnvIntOrDefault("HASH_COST", 12),
		Issuer:              getEnvOrDefault("AUTH_ISSUER", "hirewire-auth"),
		DatabaseFile:        getEnvOrDefault("AUTH_DATABASE_FILE", "auth.db"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvSecondsOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

// Validate rejects configurations that would silently weaken the token or
// credential layer. Called once at startup before anything is wired.
func (c Config) Validate() error {
	if len(c.TokenSecret) == 0 {
		return errors.New("TOKEN_SECRET is required")
	}
	if len(c.TokenSecret) < jwtx.MinSecretLen {
		return fmt.Errorf("TOKEN_SECRET must be at least %d bytes, got %d", jwtx.MinSecretLen, len(c.TokenSecret))
	}
	if c.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL_SECONDS must be positive")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

// getEnvSecondsOrDefault parses a bare integer as seconds, or a Go
// duration string ("1h", "30m") for convenience.
func getEnvSecondsOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
