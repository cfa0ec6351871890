package config

import (
	"fmt"
	"strings"

	"aiengine.app/errors"
	"github.com/kelseyhightower/envconfig"
)

// Config represents the application configuration structure
type Config struct {
	App        AppConfig        `split_words:"true"`
	Server     ServerConfig     `split_words:"true"`
	Logging    LoggingConfig    `split_words:"true"`
	VolumeScan VolumeScanConfig `split_words:"true"`
}

// AppConfig contains service identity settings
type AppConfig struct {
	Name           string `envconfig:"APP_NAME" default:"translogistics-ai-engine"`
	Version        string `envconfig:"APP_VERSION" default:"0.1.0"`
	Debug          bool   `envconfig:"DEBUG" default:"false"`
	InternalAPIKey string `envconfig:"INTERNAL_API_KEY" default:"dev-internal-key"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host string `envconfig:"HOST" default:"0.0.0.0"`
	Port int    `envconfig:"PORT" default:"8000"`
}

// Address returns the host:port string the HTTP server binds to
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggingConfig contains structured logging settings
type LoggingConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"INFO"`
	Format string `envconfig:"LOG_FORMAT" default:"json"`
}

// NormalizedLevel returns the log level lowercased, with the WARNING
// alias collapsed to warn
func (l LoggingConfig) NormalizedLevel() string {
	level := strings.ToLower(l.Level)
	if level == "warning" {
		return "warn"
	}
	return level
}

// VolumeScanConfig contains settings for the dimension-estimation model.
// The model itself is not integrated yet; these values are consumed by
// future inference code and only validated here.
type VolumeScanConfig struct {
	ModelVersion              string  `envconfig:"VOLUMESCAN_MODEL_VERSION" default:"v0.1.0"`
	AutoAcceptThreshold       float64 `envconfig:"VOLUMESCAN_AUTO_ACCEPT_THRESHOLD" default:"0.85"`
	ManualThreshold           float64 `envconfig:"VOLUMESCAN_MANUAL_THRESHOLD" default:"0.60"`
	A4WidthMM                 float64 `envconfig:"A4_WIDTH_MM" default:"210.0"`
	A4HeightMM                float64 `envconfig:"A4_HEIGHT_MM" default:"297.0"`
	DimensionTolerancePercent float64 `envconfig:"DIMENSION_TOLERANCE_PERCENT" default:"10.0"`
}

// LoadConfig loads and validates application configuration from environment variables.
// It is called exactly once at process start; the returned Config is never
// mutated and is shared by reference with every component.
func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := c.App.Validate(); err != nil {
		return err
	}
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Logging.Validate(); err != nil {
		return err
	}
	if err := c.VolumeScan.Validate(); err != nil {
		return err
	}
	return nil
}

// Validate checks application identity configuration
func (a *AppConfig) Validate() error {
	if a.Name == "" {
		return errors.NewConfigurationError("APP_NAME cannot be empty", nil)
	}
	if a.Version == "" {
		return errors.NewConfigurationError("APP_VERSION cannot be empty", nil)
	}
	return nil
}

// Validate checks server configuration
func (s *ServerConfig) Validate() error {
	if s.Host == "" {
		return errors.NewConfigurationError("HOST cannot be empty", nil)
	}
	if s.Port < 1 || s.Port > 65535 {
		return errors.NewConfigurationError("PORT must be between 1 and 65535", nil)
	}
	return nil
}

// Validate checks logging configuration
func (l *LoggingConfig) Validate() error {
	validLevels := []string{"debug", "info", "warn", "warning", "error"}
	level := strings.ToLower(l.Level)
	for _, valid := range validLevels {
		if level == valid {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("LOG_LEVEL must be one of: %s", strings.Join(validLevels, ", ")), nil)
}

// Validate checks VolumeScan model configuration
func (v *VolumeScanConfig) Validate() error {
	if v.ModelVersion == "" {
		return errors.NewConfigurationError("VOLUMESCAN_MODEL_VERSION cannot be empty", nil)
	}
	if v.AutoAcceptThreshold < 0 || v.AutoAcceptThreshold > 1 {
		return errors.NewConfigurationError("VOLUMESCAN_AUTO_ACCEPT_THRESHOLD must be between 0 and 1", nil)
	}
	if v.ManualThreshold < 0 || v.ManualThreshold > 1 {
		return errors.NewConfigurationError("VOLUMESCAN_MANUAL_THRESHOLD must be between 0 and 1", nil)
	}
	if v.A4WidthMM <= 0 {
		return errors.NewConfigurationError("A4_WIDTH_MM must be positive", nil)
	}
	if v.A4HeightMM <= 0 {
		return errors.NewConfigurationError("A4_HEIGHT_MM must be positive", nil)
	}
	if v.DimensionTolerancePercent < 0 {
		return errors.NewConfigurationError("DIMENSION_TOLERANCE_PERCENT cannot be negative", nil)
	}
	return nil
}
