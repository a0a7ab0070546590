// Package config reads and writes the mcaflow.yaml configuration.
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Config represents the top-level mcaflow.yaml configuration.
type Config struct {
	Output     OutputConfig     `yaml:"output"`
	Logging    LoggingConfig    `yaml:"logging"`
	Businesses []BusinessConfig `yaml:"businesses,omitempty"`
}

// OutputConfig names the files written by a processing run.
type OutputConfig struct {
	TransactionsFile string `yaml:"transactions_file"`
	SummaryFile      string `yaml:"summary_file"`
	HistoryFile      string `yaml:"history_file"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// BusinessConfig holds per-business processing settings.
type BusinessConfig struct {
	Name                 string  `yaml:"name"`
	ProcessingPercentage float64 `yaml:"processing_percentage"`
}

// Load reads an mcaflow.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
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

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			TransactionsFile: "transactions.csv",
			SummaryFile:      "summary.csv",
			HistoryFile:      "history.csv",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Percentages returns the configured processing percentage per
// business name as decimals.
func (c *Config) Percentages() map[string]decimal.Decimal {
	pcts := make(map[string]decimal.Decimal, len(c.Businesses))
	for _, b := range c.Businesses {
		pcts[b.Name] = decimal.NewFromFloat(b.ProcessingPercentage)
	}
	return pcts
}
