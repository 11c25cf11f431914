package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Content source modes. In bundle mode articles and categories come from
// the static bundle merged with the overlay; in database mode they come
// from Postgres and the relational CRUD endpoints are enabled.
const (
	SourceBundle   = "bundle"
	SourceDatabase = "database"
)

// Overlay backends.
const (
	OverlayFile   = "file"
	OverlaySQLite = "sqlite"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Server ServerConfig

	// Content source configuration
	Content ContentConfig

	// Overlay store configuration
	Overlay OverlayConfig

	// Database configuration (database mode only)
	Database DatabaseConfig

	// Auth configuration
	Auth AuthConfig

	// Logging configuration
	Log LogConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// ContentConfig selects where articles and categories are served from.
type ContentConfig struct {
	Source     string
	BundlePath string
}

// OverlayConfig holds overlay key/value store settings.
type OverlayConfig struct {
	Backend string
	Path    string
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host           string
	Port           string
	User           string
	Password       string
	Name           string
	SSLMode        string
	MaxOpenConns   int
	MaxIdleConns   int
	MaxLifetime    time.Duration
	MigrationsPath string
}

// AuthConfig holds admin session settings. Auth routes are only
// registered when JWTSecret is set.
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

// LogConfig holds logging settings
type LogConfig struct {
	Level  string
	Format string // "json" or "pretty"
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Content: ContentConfig{
			Source:     getEnv("CONTENT_SOURCE", SourceBundle),
			BundlePath: getEnv("CONTENT_BUNDLE_PATH", "./data/content.json"),
		},
		Overlay: OverlayConfig{
			Backend: getEnv("OVERLAY_BACKEND", OverlayFile),
			Path:    getEnv("OVERLAY_PATH", "./data/overlay.json"),
		},
		Database: DatabaseConfig{
			Host:           getEnv("DB_HOST", "localhost"),
			Port:           getEnv("DB_PORT", "5432"),
			User:           getEnv("DB_USER", "postgres"),
			Password:       getEnv("DB_PASSWORD", "postgres"),
			Name:           getEnv("DB_NAME", "magazine"),
			SSLMode:        getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:   getIntEnv("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:   getIntEnv("DB_MAX_IDLE_CONNS", 5),
			MaxLifetime:    getDurationEnv("DB_MAX_LIFETIME", 5*time.Minute),
			MigrationsPath: getEnv("MIGRATIONS_PATH", "./migrations"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
			TokenTTL:  getDurationEnv("AUTH_TOKEN_TTL", 24*time.Hour),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Content.Source != SourceBundle && c.Content.Source != SourceDatabase {
		return fmt.Errorf("CONTENT_SOURCE must be %q or %q", SourceBundle, SourceDatabase)
	}
	if c.Overlay.Backend != OverlayFile && c.Overlay.Backend != OverlaySQLite {
		return fmt.Errorf("OVERLAY_BACKEND must be %q or %q", OverlayFile, OverlaySQLite)
	}
	if c.Content.Source == SourceBundle && c.Content.BundlePath == "" {
		return fmt.Errorf("CONTENT_BUNDLE_PATH is required in bundle mode")
	}
	if c.Content.Source == SourceDatabase {
		if c.Database.Host == "" {
			return fmt.Errorf("DB_HOST is required in database mode")
		}
		if c.Database.Name == "" {
			return fmt.Errorf("DB_NAME is required in database mode")
		}
	}
	if c.Auth.JWTSecret != "" && len(c.Auth.JWTSecret) < 16 {
		return fmt.Errorf("JWT_SECRET must be at least 16 characters")
	}
	return nil
}

// GetDSN returns the PostgreSQL connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode,
	)
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
