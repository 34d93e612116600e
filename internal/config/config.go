// Package config provides Viper-based configuration management for delayspottr.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete delayspottr configuration.
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Logging LoggingConfig `mapstructure:"logging"`
	Output  OutputConfig  `mapstructure:"output"`
	Data    DataConfig    `mapstructure:"data"`
}

// APIConfig contains upstream API settings.
type APIConfig struct {
	// AccessKey authenticates against the flights API. There is no safe
	// default; fetch refuses to run without it.
	AccessKey         string  `mapstructure:"access_key"`
	BaseURL           string  `mapstructure:"base_url"`
	MaxRetries        int     `mapstructure:"max_retries"`
	TimeoutSeconds    int     `mapstructure:"timeout_seconds"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// OutputConfig contains output formatting settings.
type OutputConfig struct {
	Colors bool `mapstructure:"colors"`
}

// DataConfig contains paths to bundled lookup data.
type DataConfig struct {
	AirlinesFile string `mapstructure:"airlines_file"`
}

// Load reads configuration from file and environment variables.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		// Search paths for .delayspottr.yaml
		v.SetConfigName(".delayspottr")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/delayspottr")
	}

	// Environment variables: DELAYSPOTTR_API_ACCESS_KEY etc. The access key
	// additionally honors the AVIATIONSTACK_ACCESS_KEY name the upstream
	// documents.
	v.SetEnvPrefix("DELAYSPOTTR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("api.access_key", "DELAYSPOTTR_API_ACCESS_KEY", "AVIATIONSTACK_ACCESS_KEY")

	setDefaults(v)

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// setDefaults configures default values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "https://api.aviationstack.com/v1")
	v.SetDefault("api.max_retries", 3)
	v.SetDefault("api.timeout_seconds", 30)
	v.SetDefault("api.requests_per_second", 1.0)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", "")

	v.SetDefault("output.colors", true)

	v.SetDefault("data.airlines_file", "./data/airlines.csv")
}

// validate checks the configuration for errors.
func validate(cfg *Config) error {
	if cfg.API.BaseURL == "" {
		return fmt.Errorf("api.base_url must not be empty")
	}

	if cfg.API.MaxRetries < 1 {
		return fmt.Errorf("api.max_retries must be at least 1, got %d", cfg.API.MaxRetries)
	}

	if cfg.API.TimeoutSeconds < 1 {
		return fmt.Errorf("api.timeout_seconds must be at least 1, got %d", cfg.API.TimeoutSeconds)
	}

	if cfg.API.RequestsPerSecond <= 0 {
		return fmt.Errorf("api.requests_per_second must be positive, got %g", cfg.API.RequestsPerSecond)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s (must be debug, info, warn, or error)", cfg.Logging.Level)
	}

	return nil
}
