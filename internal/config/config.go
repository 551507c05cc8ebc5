// Package config holds the run settings for ventmap.
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"ventmap/internal/grid"
)

const (
	// DefaultDimension fits the three-digit coordinates of the segment format.
	DefaultDimension = 1000
	MaxDenseDimension = grid.MaxDenseDimension
	MaxDimension      = grid.MaxSparseDimension

	// maxFileSize bounds how much of a config file is read.
	maxFileSize = 1 << 20
)

// Config is the JSON schema of a ventmap config file. Fields omitted
// from the file keep their defaults.
type Config struct {
	Dimension    int  `json:"dimension"`
	StraightOnly bool `json:"straight_only"`
	Sparse       bool `json:"sparse"`
	Workers      int  `json:"workers"`
}

// Default returns the settings used when no config file is given.
func Default() *Config {
	return &Config{Dimension: DefaultDimension, Workers: 1}
}

// Load reads a .json config file on top of Default and validates it.
func Load(path string) (*Config, error) {
	if filepath.Ext(path) != ".json" {
		return nil, fmt.Errorf("config: %s: not a .json file", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxFileSize+1))
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if len(data) > maxFileSize {
		return nil, fmt.Errorf("config: %s exceeds %d bytes", path, maxFileSize)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if c.Dimension <= 0 {
		return fmt.Errorf("dimension must be positive, got %d", c.Dimension)
	}
	if c.Dimension > MaxDimension {
		return fmt.Errorf("dimension must be at most %d, got %d", MaxDimension, c.Dimension)
	}
	if !c.Sparse && c.Dimension > MaxDenseDimension {
		return fmt.Errorf("dimension %d needs sparse: true (dense limit %d)", c.Dimension, MaxDenseDimension)
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.Sparse && c.Workers > 1 {
		return fmt.Errorf("sparse grids are single-threaded, got workers=%d", c.Workers)
	}
	return nil
}

// Options converts the config into pipeline options.
func (c *Config) Options() grid.Options {
	return grid.Options{
		Dimension:    c.Dimension,
		StraightOnly: c.StraightOnly,
		Sparse:       c.Sparse,
		Workers:      c.Workers,
	}
}
