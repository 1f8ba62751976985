package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config keeps runtime settings for the server.
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	ServerPort  string `mapstructure:"SERVER_PORT"`
	DatabaseURL string `mapstructure:"DATABASE_URL"`

	// Upstream translation provider, used by the relay endpoint. The
	// credential never leaves the server.
	TranslationAPIURL string `mapstructure:"TRANSLATION_API_URL"`
	TranslationAPIKey string `mapstructure:"TRANSLATION_API_KEY"`

	TranslateTimeoutSeconds int `mapstructure:"TRANSLATE_TIMEOUT_SECONDS"`
	ReportIntervalHours     int `mapstructure:"REPORT_INTERVAL_HOURS"`
}

// Load reads configuration from a .env file in the given path and from
// environment variables, with sane defaults.
func Load(path string) (Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("DATABASE_URL", "todos.db")
	viper.SetDefault("TRANSLATION_API_URL", "")
	viper.SetDefault("TRANSLATION_API_KEY", "")
	viper.SetDefault("TRANSLATE_TIMEOUT_SECONDS", 10)
	viper.SetDefault("REPORT_INTERVAL_HOURS", 0)

	if err := viper.ReadInConfig(); err != nil {
		// The config file is optional; env vars alone are fine.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// TranslateTimeout bounds a single translation round trip.
func (c Config) TranslateTimeout() time.Duration {
	if c.TranslateTimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TranslateTimeoutSeconds) * time.Second
}

// ReportInterval returns how often the summary job runs; zero disables it.
func (c Config) ReportInterval() time.Duration {
	if c.ReportIntervalHours <= 0 {
		return 0
	}
	return time.Duration(c.ReportIntervalHours) * time.Hour
}
