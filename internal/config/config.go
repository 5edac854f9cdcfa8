// SPDX-License-Identifier: MIT

// Package config loads the lvsparse YAML configuration.
//
// Example file:
//
//	numeric:
//	  epsilon: 1e-12
//	  validate_nan_inf: true
//	log:
//	  level: info
//	  format: text
//	store:
//	  path: /var/lib/lvsparse
//	  sync_writes: true
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/katalvlaran/lvsparse/sparse"
	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the root of the configuration file.
type Config struct {
	Numeric NumericConfig `yaml:"numeric"`
	Log     LogConfig     `yaml:"log"`
	Store   StoreConfig   `yaml:"store"`
}

// NumericConfig is the matrix numeric policy.
type NumericConfig struct {
	// Epsilon is the zero threshold; values with |v| <= Epsilon are not stored.
	Epsilon float64 `yaml:"epsilon"`
	// ValidateNaNInf rejects NaN/±Inf on assignment.
	ValidateNaNInf bool `yaml:"validate_nan_inf"`
}

// LogConfig selects the log level and handler.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// Format is text or json.
	Format string `yaml:"format"`
}

// StoreConfig configures the matrix store.
type StoreConfig struct {
	Path       string `yaml:"path"`
	InMemory   bool   `yaml:"in_memory"`
	SyncWrites bool   `yaml:"sync_writes"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Numeric: NumericConfig{
			Epsilon:        sparse.DefaultEpsilon,
			ValidateNaNInf: sparse.DefaultValidateNaNInf,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Store: StoreConfig{
			Path:       ".lvsparse",
			SyncWrites: true,
		},
	}
}

// Load reads the YAML file at path on top of Default. An empty path returns
// the defaults. The result is validated.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	eps := c.Numeric.Epsilon
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		return fmt.Errorf("%w: numeric.epsilon = %g", ErrInvalid, eps)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level = %q", ErrInvalid, c.Log.Level)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format = %q", ErrInvalid, c.Log.Format)
	}
	if !c.Store.InMemory && c.Store.Path == "" {
		return fmt.Errorf("%w: store.path is required unless store.in_memory", ErrInvalid)
	}

	return nil
}

// SparseOptions converts the numeric section into matrix options.
// Call Validate first: WithEpsilon panics on an invalid threshold.
func (c Config) SparseOptions() []sparse.Option {
	opts := []sparse.Option{sparse.WithEpsilon(c.Numeric.Epsilon)}
	if c.Numeric.ValidateNaNInf {
		opts = append(opts, sparse.WithValidateNaNInf())
	} else {
		opts = append(opts, sparse.WithNoValidateNaNInf())
	}

	return opts
}

// Marshal renders c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
