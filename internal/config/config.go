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
	Server ServerConfig

	// Local document store configuration
	Store StoreConfig

	// Spreadsheet import configuration
	Import ImportConfig

	// Relational mirror configuration
	Mirror MirrorConfig

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

// StoreConfig holds file-backed store settings
type StoreConfig struct {
	DataDir     string
	FeedFile    string
	MappingFile string
}

// ImportConfig holds spreadsheet import settings
type ImportConfig struct {
	UploadDir     string
	MaxUploadSize int64 // in bytes
	HeaderOffset  int   // header row for stock files, 0-based
	SaleSheetName string
}

// MirrorConfig holds settings for the external relational mirror.
// Replication is best effort: calls time out quickly and never fail
// the local mutation.
type MirrorConfig struct {
	Enabled bool
	BaseURL string
	APIKey  string
	Timeout time.Duration
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
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 120*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Store: StoreConfig{
			DataDir:     getEnv("DATA_DIR", "./data"),
			FeedFile:    getEnv("FEED_FILE", "ads_feed.json"),
			MappingFile: getEnv("MAPPING_FILE", "config.json"),
		},
		Import: ImportConfig{
			UploadDir:     getEnv("UPLOAD_DIR", "./data/uploads"),
			MaxUploadSize: getInt64Env("MAX_UPLOAD_SIZE", 100*1024*1024), // 100MB
			HeaderOffset:  getIntEnv("IMPORT_HEADER_OFFSET", 2),
			SaleSheetName: getEnv("IMPORT_SALE_SHEET", "зимние скидки"),
		},
		Mirror: MirrorConfig{
			Enabled: getBoolEnv("MIRROR_ENABLED", false),
			BaseURL: getEnv("MIRROR_URL", ""),
			APIKey:  getEnv("MIRROR_API_KEY", ""),
			Timeout: getDurationEnv("MIRROR_TIMEOUT", 5*time.Second),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Store.DataDir == "" {
		return fmt.Errorf("DATA_DIR is required")
	}
	if c.Mirror.Enabled && c.Mirror.BaseURL == "" {
		return fmt.Errorf("MIRROR_URL is required when MIRROR_ENABLED is set")
	}
	if c.Import.HeaderOffset < 0 {
		return fmt.Errorf("IMPORT_HEADER_OFFSET must not be negative")
	}
	return nil
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

func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
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

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
