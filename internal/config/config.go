package config

import (
	"os"
	"strconv"
	"strings"

	"slviewer/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Data   DataConfig
	Log    LogConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// DataConfig controls where the queue table is read from
type DataConfig struct {
	Dir  string // scanned for .xlsx/.csv files
	File string // explicit file, overrides the scan when set
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string
}

// Defaults
const (
	DefaultPort     = "5000"
	DefaultDataDir  = "."
	DefaultGinMode  = "release"
	DefaultLogLevel = "info"
)

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: loadServerConfig(),
		Data:   loadDataConfig(),
		Log:    loadLogConfig(),
	}

	if err := Validate(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port:    getEnvOrDefault("PORT", DefaultPort),
		GinMode: getEnvOrDefault("GIN_MODE", DefaultGinMode),
	}
}

func loadDataConfig() DataConfig {
	return DataConfig{
		Dir:  getEnvOrDefault("DATA_DIR", DefaultDataDir),
		File: getEnvOrDefault("DATA_FILE", ""),
	}
}

func loadLogConfig() LogConfig {
	return LogConfig{
		Level: strings.ToLower(getEnvOrDefault("LOG_LEVEL", DefaultLogLevel)),
	}
}

// Validate checks a fully populated config, including values set from flags
func Validate(config *Config) error {
	port, err := strconv.Atoi(config.Server.Port)
	if err != nil || port < 1 || port > 65535 {
		return errors.ConfigInvalid("PORT must be a number between 1 and 65535, got " + strconv.Quote(config.Server.Port))
	}
	if config.Data.Dir == "" {
		return errors.ConfigInvalid("data directory is required")
	}
	return nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return "0.0.0.0:" + c.Server.Port
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}
