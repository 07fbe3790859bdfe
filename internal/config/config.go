package config

import (
	"os"

	"elemdex/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig
	Data     DataConfig
	Database DatabaseConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port    string
	APIPort string
	GinMode string
}

// DataConfig holds data source settings
type DataConfig struct {
	DataFile string
}

// DatabaseConfig holds optional Postgres catalog source settings.
// When URL is empty the catalog loads from DataFile instead.
type DatabaseConfig struct {
	URL   string
	Table string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:    getEnvOrDefault("PORT", "8080"),
			APIPort: getEnvOrDefault("API_PORT", "8081"),
			GinMode: getEnvOrDefault("GIN_MODE", "release"),
		},
		Data: DataConfig{
			DataFile: getEnvOrDefault("DATA_FILE", "final_element_sheet.xlsx"),
		},
		Database: DatabaseConfig{
			URL:   getEnvOrDefault("DATABASE_URL", ""),
			Table: getEnvOrDefault("DATABASE_TABLE", "elements"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Database.URL == "" && config.Data.DataFile == "" {
		return errors.ConfigInvalid("either DATA_FILE or DATABASE_URL is required")
	}
	if config.Database.URL != "" && config.Database.Table == "" {
		return errors.ConfigInvalid("DATABASE_TABLE is required when DATABASE_URL is set")
	}
	if config.Server.Port == config.Server.APIPort {
		return errors.ConfigInvalid("PORT and API_PORT must differ")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
