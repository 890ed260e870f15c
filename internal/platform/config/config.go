package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds runtime configuration for the listing server, loaded
// from environment variables.
type Config struct {
	Port           string
	GinMode        string
	ScanCSVPath    string
	AllowedOrigins string
}

// Load reads environment variables into a Config with sensible defaults.
func Load() (Config, error) {
	cfg := Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        getEnv("GIN_MODE", "release"),
		ScanCSVPath:    strings.TrimSpace(os.Getenv("SCAN_CSV_PATH")),
		AllowedOrigins: strings.TrimSpace(os.Getenv("ALLOWED_ORIGINS")),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate ensures required fields are present and usable.
func (c Config) Validate() error {
	if c.Port == "" {
		return errors.New("PORT is required")
	}
	if c.ScanCSVPath == "" {
		return errors.New("SCAN_CSV_PATH is required")
	}
	if _, err := os.Stat(c.ScanCSVPath); err != nil {
		return fmt.Errorf("SCAN_CSV_PATH: %w", err)
	}
	return nil
}

// ReportDefaults are optional report settings read from a YAML file.
// Command-line flags override anything set here.
type ReportDefaults struct {
	Title      string `yaml:"title"`
	Project    string `yaml:"project"`
	Subtitle   string `yaml:"subtitle"`
	AppVersion string `yaml:"app_version"`
}

// LoadReportDefaults reads report defaults from the YAML file at path.
func LoadReportDefaults(path string) (ReportDefaults, error) {
	f, err := os.Open(path)
	if err != nil {
		return ReportDefaults{}, fmt.Errorf("open report config: %w", err)
	}
	defer f.Close()

	var defaults ReportDefaults
	if err := yaml.NewDecoder(f).Decode(&defaults); err != nil {
		return ReportDefaults{}, fmt.Errorf("decode report config: %w", err)
	}
	return defaults, nil
}

func getEnv(key, defaultVal string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return defaultVal
}
