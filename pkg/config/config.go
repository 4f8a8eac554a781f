// Package config holds the runtime configuration for the scan CLI and the
// validation rules for SCAN parameters.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ErrApproxNeedsSamples is returned when an approximate measure is selected
// without a positive sample count.
var ErrApproxNeedsSamples = errors.New("approximate similarity requires num_samples > 0")

// Config is the full runtime configuration. Values can come from a YAML
// file, flags, or both; flags win.
type Config struct {
	GraphPath   string  `yaml:"graph_path" validate:"required"`
	Similarity  string  `yaml:"similarity" validate:"oneof=cosine jaccard approx_cosine approx_jaccard"`
	Mu          uint64  `yaml:"mu" validate:"min=2"`
	Epsilon     float64 `yaml:"epsilon" validate:"min=0,max=1"`
	NumSamples  uint32  `yaml:"num_samples"`
	Seed        uint64  `yaml:"seed"`
	Workers     int     `yaml:"workers" validate:"min=0"`
	MetricsAddr string  `yaml:"metrics_addr"`
	LogLevel    string  `yaml:"log_level"`
}

// Default returns the configuration used when no file or flag overrides a
// value.
func Default() Config {
	return Config{
		Similarity: "cosine",
		Mu:         2,
		Epsilon:    0.6,
		NumSamples: 256,
		Seed:       0,
		LogLevel:   "INFO",
	}
}

// Load reads a YAML config file over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks field constraints plus the cross-field rule that
// approximate measures need a sample count.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if (c.Similarity == "approx_cosine" || c.Similarity == "approx_jaccard") && c.NumSamples == 0 {
		return ErrApproxNeedsSamples
	}
	return nil
}
