// SPDX-License-Identifier: MIT

// Package config loads numlab settings from defaults, an optional YAML file,
// NUMLAB_* environment variables and bound command-line flags, in that order
// of increasing precedence (viper).
package config

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/katalvlaran/numlab/calculus"
)

// EnvPrefix is the prefix of environment overrides, e.g. NUMLAB_LOG_LEVEL.
const EnvPrefix = "NUMLAB"

// Output formats.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// Config represents the complete numlab configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	Numeric NumericConfig `mapstructure:"numeric"`
	Output  OutputConfig  `mapstructure:"output"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// NumericConfig holds the default knobs of the calculus kernel.
type NumericConfig struct {
	Steps         int     `mapstructure:"steps"`
	Tolerance     float64 `mapstructure:"tolerance"`
	MaxIterations int     `mapstructure:"max_iterations"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Format          string `mapstructure:"format"`
	StatsPrecision  int    `mapstructure:"stats_precision"`
	MatrixPrecision int    `mapstructure:"matrix_precision"`
}

// DefaultConfig returns a configuration with the documented defaults.
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
		Numeric: NumericConfig{
			Steps:         calculus.DefaultSteps,
			Tolerance:     calculus.DefaultTolerance,
			MaxIterations: calculus.DefaultMaxIterations,
		},
		Output: OutputConfig{
			Format:          OutputText,
			StatsPrecision:  4,
			MatrixPrecision: 2,
		},
	}
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !slices.Contains(validLogLevels, strings.ToLower(c.Log.Level)) {
		return fmt.Errorf("log.level must be one of: debug, info, warn, error")
	}
	if f := strings.ToLower(c.Log.Format); f != "json" && f != "console" {
		return fmt.Errorf("log.format must be 'json' or 'console'")
	}

	if c.Numeric.Steps <= 0 {
		return fmt.Errorf("numeric.steps must be > 0")
	}
	if !(c.Numeric.Tolerance > 0) || math.IsInf(c.Numeric.Tolerance, 0) {
		return fmt.Errorf("numeric.tolerance must be finite and > 0")
	}
	if c.Numeric.MaxIterations <= 0 {
		return fmt.Errorf("numeric.max_iterations must be > 0")
	}

	if c.Output.Format != OutputText && c.Output.Format != OutputYAML {
		return fmt.Errorf("output.format must be 'text' or 'yaml'")
	}
	if c.Output.StatsPrecision < 0 || c.Output.MatrixPrecision < 0 {
		return fmt.Errorf("output precision must be >= 0")
	}

	return nil
}

// CalculusOptions converts the numeric settings to kernel options.
// The config must have passed Validate.
func (c *Config) CalculusOptions() []calculus.Option {
	return []calculus.Option{
		calculus.WithSteps(c.Numeric.Steps),
		calculus.WithTolerance(c.Numeric.Tolerance),
		calculus.WithMaxIterations(c.Numeric.MaxIterations),
	}
}

// SetDefaults registers the defaults with v so they are visible during Unmarshal.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)

	v.SetDefault("numeric.steps", d.Numeric.Steps)
	v.SetDefault("numeric.tolerance", d.Numeric.Tolerance)
	v.SetDefault("numeric.max_iterations", d.Numeric.MaxIterations)

	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.stats_precision", d.Output.StatsPrecision)
	v.SetDefault("output.matrix_precision", d.Output.MatrixPrecision)
}

// Load reads configuration into a Config.
// When cfgFile is empty, numlab.yaml is searched in "." and "./configs"
// and a missing file is not an error. An explicit cfgFile must exist.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	SetDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.SetConfigName("numlab")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}
