// SPDX-License-Identifier: MIT

// Package config loads the application configuration: where the plot
// description is exported, the solver's pivot tolerance and logging.
//
// Sources, later wins: Default() → YAML file (Load) → environment (ApplyEnv).
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlath-interp/export"
	"github.com/katalvlaran/lvlath-interp/matrix"
)

// Environment variable names understood by ApplyEnv.
const (
	EnvExportDir      = "INTERP_EXPORT_DIR"
	EnvExportFile     = "INTERP_EXPORT_FILE"
	EnvExportEnabled  = "INTERP_EXPORT_ENABLED"
	EnvPivotTolerance = "INTERP_PIVOT_TOLERANCE"
	EnvVerbose        = "INTERP_VERBOSE"
)

// ErrInvalidConfig indicates a value that fails Validate or cannot be coerced.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root of the YAML document.
type Config struct {
	Export ExportConfig `yaml:"export"`
	Solver SolverConfig `yaml:"solver"`
	Log    LogConfig    `yaml:"log"`
}

// ExportConfig controls the plot description written after each calculation.
type ExportConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`  // empty: export.DefaultDir()
	File    string `yaml:"file"` // bare file name, no separators
}

// SolverConfig tunes the elimination kernel.
type SolverConfig struct {
	PivotTolerance float64 `yaml:"pivot_tolerance"` // |pivot| <= tol is singular
}

// LogConfig selects console logging.
type LogConfig struct {
	Verbose bool `yaml:"verbose"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Export: ExportConfig{
			Enabled: true,
			File:    export.DefaultFileName,
		},
		Solver: SolverConfig{
			PivotTolerance: matrix.DefaultPivotTolerance,
		},
	}
}

// Load reads a YAML file over Default(). Keys absent from the file keep
// their defaults. An empty path returns Default() unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err = yaml.Unmarshal(d, &cfg); err != nil {
		return cfg, fmt.Errorf("%w: %s: %w", ErrInvalidConfig, path, err)
	}

	return cfg, cfg.Validate()
}

// ApplyEnv overrides fields from environment-style key/value lookups.
// lookup is usually os.LookupEnv; values are coerced with cast.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvExportDir); ok {
		c.Export.Dir = v
	}
	if v, ok := lookup(EnvExportFile); ok {
		c.Export.File = v
	}
	if v, ok := lookup(EnvExportEnabled); ok {
		b, err := cast.ToBoolE(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvExportEnabled, v)
		}
		c.Export.Enabled = b
	}
	if v, ok := lookup(EnvPivotTolerance); ok {
		f, err := cast.ToFloat64E(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvPivotTolerance, v)
		}
		c.Solver.PivotTolerance = f
	}
	if v, ok := lookup(EnvVerbose); ok {
		b, err := cast.ToBoolE(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidConfig, EnvVerbose, v)
		}
		c.Log.Verbose = b
	}

	return c.Validate()
}

// Validate checks invariants that the components would otherwise panic or
// misbehave on.
func (c Config) Validate() error {
	tol := c.Solver.PivotTolerance
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		return fmt.Errorf("%w: solver.pivot_tolerance must be finite and >= 0, got %v", ErrInvalidConfig, tol)
	}
	if c.Export.Enabled {
		if c.Export.File == "" {
			return fmt.Errorf("%w: export.file is empty", ErrInvalidConfig)
		}
		if strings.ContainsAny(c.Export.File, `/\`) {
			return fmt.Errorf("%w: export.file %q must be a bare file name", ErrInvalidConfig, c.Export.File)
		}
	}

	return nil
}

// SolverOptions translates the solver section into matrix options.
// Call only on a validated Config.
func (c Config) SolverOptions() []matrix.Option {
	return []matrix.Option{matrix.WithPivotTolerance(c.Solver.PivotTolerance)}
}
