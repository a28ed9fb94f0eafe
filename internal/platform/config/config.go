package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage driver names accepted by STORAGE_DRIVER.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool

	StorageDriver        string
	DataDir              string
	SQLitePath           string
	StorageCapacityBytes int64

	RateLimit          string
	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("STORAGE_DRIVER", DriverFile)
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("SQLITE_PATH", "./data/sales_visit.db")
	viper.SetDefault("STORAGE_CAPACITY_BYTES", int64(5*1024*1024))
	viper.SetDefault("RATE_LIMIT", "120-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:                 viper.GetString("PORT"),
		IsProduction:         viper.GetBool("IS_PRODUCTION"),
		StorageDriver:        strings.ToLower(viper.GetString("STORAGE_DRIVER")),
		DataDir:              viper.GetString("DATA_DIR"),
		SQLitePath:           viper.GetString("SQLITE_PATH"),
		StorageCapacityBytes: viper.GetInt64("STORAGE_CAPACITY_BYTES"),
		RateLimit:            viper.GetString("RATE_LIMIT"),
	}

	if cfg.StorageDriver != DriverFile && cfg.StorageDriver != DriverSQLite {
		return nil, fmt.Errorf("invalid STORAGE_DRIVER %q: must be %q or %q", cfg.StorageDriver, DriverFile, DriverSQLite)
	}
	if cfg.StorageCapacityBytes < 0 {
		return nil, fmt.Errorf("invalid STORAGE_CAPACITY_BYTES %d: must not be negative", cfg.StorageCapacityBytes)
	}

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}
