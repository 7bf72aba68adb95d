// Package config reads and writes the fintrack.yaml configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name inside a ledger directory.
const FileName = "fintrack.yaml"

// Config represents the top-level fintrack.yaml configuration.
type Config struct {
	DataFile string         `yaml:"data_file"`
	Currency string         `yaml:"currency"`
	Report   ReportConfig   `yaml:"report"`
	Git      GitConfig      `yaml:"git"`
	AuditLog AuditLogConfig `yaml:"audit_log"`
}

// ReportConfig holds defaults for the reporting commands.
type ReportConfig struct {
	WindowDays  int `yaml:"window_days"`  // spending report window
	ChartMonths int `yaml:"chart_months"` // monthly chart bucket count
}

// GitConfig controls versioning of the data file.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// AuditLogConfig controls the mutation audit log.
type AuditLogConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Load reads a fintrack.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new ledger.
func Default() *Config {
	return &Config{
		DataFile: "data.json",
		Currency: "$",
		Report: ReportConfig{
			WindowDays:  30,
			ChartMonths: 6,
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Fintrack",
			AuthorEmail: "ledger@fintrack.dev",
		},
		AuditLog: AuditLogConfig{
			Enabled: true,
		},
	}
}

// applyDefaults fills zero values a hand-edited config may have dropped.
func (c *Config) applyDefaults() {
	d := Default()
	if c.DataFile == "" {
		c.DataFile = d.DataFile
	}
	if c.Currency == "" {
		c.Currency = d.Currency
	}
	if c.Report.WindowDays <= 0 {
		c.Report.WindowDays = d.Report.WindowDays
	}
	if c.Report.ChartMonths <= 0 {
		c.Report.ChartMonths = d.Report.ChartMonths
	}
}
