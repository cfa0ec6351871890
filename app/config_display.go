package app

import (
	"log"
	"os"
	"sort"
	"strings"

	"aiengine.app/config"
)

// ConfigDisplayer handles configuration and environment variable display
type ConfigDisplayer struct{}

// NewConfigDisplayer creates a new configuration displayer
func NewConfigDisplayer() *ConfigDisplayer {
	return &ConfigDisplayer{}
}

// PrintConfig prints all fields in the configuration
func (cd *ConfigDisplayer) PrintConfig(cfg *config.Config) {
	log.Println("==== APPLICATION CONFIGURATION ====")

	log.Printf("APP:\n")
	log.Printf("  Name: %s\n", cfg.App.Name)
	log.Printf("  Version: %s\n", cfg.App.Version)
	log.Printf("  Debug: %t\n", cfg.App.Debug)
	log.Printf("  Internal API Key: %s\n", cd.maskString(cfg.App.InternalAPIKey))

	log.Printf("\nSERVER:\n")
	log.Printf("  Host: %s\n", cfg.Server.Host)
	log.Printf("  Port: %d\n", cfg.Server.Port)

	log.Printf("\nLOGGING:\n")
	log.Printf("  Level: %s\n", cfg.Logging.Level)
	log.Printf("  Format: %s\n", cfg.Logging.Format)

	log.Printf("\nVOLUMESCAN:\n")
	log.Printf("  Model Version: %s\n", cfg.VolumeScan.ModelVersion)
	log.Printf("  Auto Accept Threshold: %.2f\n", cfg.VolumeScan.AutoAcceptThreshold)
	log.Printf("  Manual Threshold: %.2f\n", cfg.VolumeScan.ManualThreshold)
	log.Printf("  A4 Width (mm): %.1f\n", cfg.VolumeScan.A4WidthMM)
	log.Printf("  A4 Height (mm): %.1f\n", cfg.VolumeScan.A4HeightMM)
	log.Printf("  Dimension Tolerance (%%): %.1f\n", cfg.VolumeScan.DimensionTolerancePercent)

	log.Println("===================================")
}

// PrintAllEnvVars prints all environment variables available to the application
func (cd *ConfigDisplayer) PrintAllEnvVars() {
	log.Println("==== ENVIRONMENT VARIABLES ====")

	envVars := os.Environ()
	sort.Strings(envVars)

	for _, env := range envVars {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 {
			continue
		}

		key := pair[0]
		value := pair[1]

		if cd.isSensitive(key) {
			value = cd.maskString(value)
		}

		log.Printf("%s=%s\n", key, value)
	}

	log.Println("===============================")
}

// maskString masks sensitive information like passwords and API keys
func (cd *ConfigDisplayer) maskString(s string) string {
	if len(s) <= 4 {
		return "****"
	}
	visible := len(s) / 4
	return s[:visible] + strings.Repeat("*", len(s)-visible)
}

// isSensitive checks if an environment variable key is considered sensitive
func (cd *ConfigDisplayer) isSensitive(key string) bool {
	sensitiveKeys := []string{
		"API_KEY", "PASSWORD", "SECRET", "TOKEN", "KEY", "PASS", "PWD",
	}

	key = strings.ToUpper(key)
	for _, sensitive := range sensitiveKeys {
		if strings.Contains(key, sensitive) {
			return true
		}
	}

	return false
}
