// Package config handles muntjac configuration.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/HartBrook/muntjac/internal/errors"
)

// OptimizeConfig contains default optimization settings.
type OptimizeConfig struct {
	SimilarityThreshold float64  `yaml:"similarity_threshold,omitempty"` // Minimum similarity to the original prompt (default: 0.85)
	Strategies          []string `yaml:"strategies,omitempty"`           // Default strategy selection (default: all)
	Aggressive          bool     `yaml:"aggressive,omitempty"`           // Enable lossier transforms
	PreserveStructure   *bool    `yaml:"preserve_structure,omitempty"`   // Keep paragraph structure (default: true)
	TargetReduction     float64  `yaml:"target_reduction,omitempty"`     // Stop once this reduction fraction is reached
}

// Config represents the muntjac configuration file.
type Config struct {
	Version int `yaml:"version"`

	// Model is the default model profile for token counting and cost
	// estimates.
	Model string `yaml:"model,omitempty"`

	Optimize OptimizeConfig `yaml:"optimize,omitempty"`
}

// Default values.
const (
	DefaultVersion   = 1
	DefaultModel     = "gpt-3.5-turbo"
	DefaultThreshold = 0.85
)

// Default returns a config with all defaults applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads and validates config from the default location.
func Load() (*Config, error) {
	paths := NewPaths()
	return LoadFrom(paths.ConfigFile)
}

// LoadFrom reads and validates config from a specific path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(errors.ErrConfigInvalid, "failed to read config", "", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrConfigInvalid, "failed to parse config YAML", "Check config syntax", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes config to the default location.
func Save(cfg *Config) error {
	paths := NewPaths()
	return SaveTo(cfg, paths.ConfigFile)
}

// SaveTo writes config to a specific path.
func SaveTo(cfg *Config, path string) error {
	cfg.applyDefaults()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(errors.ErrConfigInvalid, "failed to marshal config", "", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(errors.ErrConfigInvalid, "failed to create config directory", "", err)
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks config for valid values.
func (c *Config) Validate() error {
	if c.Optimize.SimilarityThreshold <= 0 || c.Optimize.SimilarityThreshold > 1 {
		return errors.ConfigInvalid("optimize.similarity_threshold must be in (0, 1]")
	}
	if c.Optimize.TargetReduction < 0 || c.Optimize.TargetReduction >= 1 {
		return errors.ConfigInvalid("optimize.target_reduction must be in [0, 1)")
	}
	return nil
}

// applyDefaults sets default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = DefaultVersion
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.Optimize.SimilarityThreshold == 0 {
		c.Optimize.SimilarityThreshold = DefaultThreshold
	}
}

// StructurePreserved reports whether paragraph structure should be
// kept; unset defaults to true.
func (o *OptimizeConfig) StructurePreserved() bool {
	return o.PreserveStructure == nil || *o.PreserveStructure
}

// Exists checks if a config file exists at the default location.
func Exists() bool {
	paths := NewPaths()
	_, err := os.Stat(paths.ConfigFile)
	return err == nil
}
