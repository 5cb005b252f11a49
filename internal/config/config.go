package config

import (
	"fmt"
	"os"
	"strconv"

	"goreview/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server  ServerConfig
	Archive ArchiveConfig
	Review  ReviewConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// ArchiveConfig holds report archive settings. The archive stays disabled
// when no database URL is configured.
type ArchiveConfig struct {
	DatabaseURL string
	Enabled     bool
}

// ReviewConfig holds review generation settings
type ReviewConfig struct {
	DefaultRole string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server:  loadServerConfig(),
		Archive: loadArchiveConfig(),
		Review:  loadReviewConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port: getEnvOrDefault("PORT", "8080"),
	}
}

func loadArchiveConfig() ArchiveConfig {
	url := os.Getenv("DATABASE_URL")
	return ArchiveConfig{
		DatabaseURL: url,
		Enabled:     url != "",
	}
}

func loadReviewConfig() ReviewConfig {
	return ReviewConfig{
		DefaultRole: getEnvOrDefault("DEFAULT_ROLE", "SD2"),
	}
}

func validateConfig(config *Config) error {
	if _, err := strconv.Atoi(config.Server.Port); err != nil {
		return errors.ConfigInvalid(fmt.Sprintf("PORT must be numeric, got %q", config.Server.Port))
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
