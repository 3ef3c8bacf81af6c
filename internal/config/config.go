package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file looked up in the working directory.
const DefaultFileName = "bilanco.yaml"

// Config represents the top-level bilanco.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Database DatabaseConfig `yaml:"database"`
	Import   ImportConfig   `yaml:"import"`
}

// BusinessConfig pre-fills the entity fields for new sheets.
type BusinessConfig struct {
	Name string `yaml:"name"`
}

// DatabaseConfig locates the document store.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// ImportConfig controls spreadsheet reconciliation. Fuzzy matching is off
// by default: unmatched labels are skipped, never guessed.
type ImportConfig struct {
	FuzzyMatching bool    `yaml:"fuzzy_matching"`
	Cutoff        float64 `yaml:"cutoff"`
}

// Load reads a bilanco.yaml file from disk.
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

// Default returns a Config with sensible defaults.
func Default(businessName string) *Config {
	return &Config{
		Business: BusinessConfig{Name: businessName},
		Database: DatabaseConfig{Path: "bilanco.db"},
		Import: ImportConfig{
			FuzzyMatching: false,
			Cutoff:        0.82,
		},
	}
}

// LoadOrDefault loads path if it exists, otherwise returns defaults.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(""), nil
	}
	return Load(path)
}
