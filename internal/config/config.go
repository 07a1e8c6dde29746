package config

import (
	"github.com/spf13/viper"
)

// Config holds the runtime settings, loaded from environment variables with
// defaults suitable for local development.
type Config struct {
	AppPort       string
	StorageDriver string // "file", "sqlite" or "postgres"
	DataDir       string // document directory for the file driver
	DatabaseDSN   string // DSN for the relational drivers
	LogLevel      string
	LogPretty     bool
}

// Load reads the configuration from the environment.
func Load() Config {
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("STORAGE_DRIVER", "file")
	viper.SetDefault("DATA_DIR", "./data")
	viper.SetDefault("DATABASE_DSN", "gudang.db")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_PRETTY", false)
	viper.AutomaticEnv()

	return Config{
		AppPort:       viper.GetString("APP_PORT"),
		StorageDriver: viper.GetString("STORAGE_DRIVER"),
		DataDir:       viper.GetString("DATA_DIR"),
		DatabaseDSN:   viper.GetString("DATABASE_DSN"),
		LogLevel:      viper.GetString("LOG_LEVEL"),
		LogPretty:     viper.GetBool("LOG_PRETTY"),
	}
}
