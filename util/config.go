package util

import (
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variables.
type Config struct {
	DBDriver           string        `mapstructure:"DB_DRIVER"`
	DBSource           string        `mapstructure:"DB_SOURCE"`
	ServerAddress      string        `mapstructure:"SERVER_ADDRESS"`
	HistoryLimit       int32         `mapstructure:"HISTORY_LIMIT"`
	RateLimit          float64       `mapstructure:"RATE_LIMIT"`
	RateBurst          int           `mapstructure:"RATE_BURST"`
	SensitivityWorkers int           `mapstructure:"SENSITIVITY_WORKERS"`
	RequestTimeout     time.Duration `mapstructure:"REQUEST_TIMEOUT"`
	LogLevel           string        `mapstructure:"LOG_LEVEL"`
	LogFormat          string        `mapstructure:"LOG_FORMAT"`
	GinMode            string        `mapstructure:"GIN_MODE"`
}

// LoadConfig reads configuration from app.env in path, overridden by the environment.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("DB_DRIVER", "postgres")
	v.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	v.SetDefault("HISTORY_LIMIT", 15)
	v.SetDefault("RATE_LIMIT", 1.0)
	v.SetDefault("RATE_BURST", 2)
	v.SetDefault("SENSITIVITY_WORKERS", 4)
	v.SetDefault("REQUEST_TIMEOUT", "10s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("GIN_MODE", "release")

	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = v.Unmarshal(&config)
	return
}
