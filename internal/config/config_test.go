package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/numlab/calculus"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, 1000, cfg.Numeric.Steps)
	assert.Equal(t, 1e-10, cfg.Numeric.Tolerance)
	assert.Equal(t, 1000, cfg.Numeric.MaxIterations)
	assert.Equal(t, OutputText, cfg.Output.Format)
	assert.Equal(t, 4, cfg.Output.StatsPrecision)
	assert.Equal(t, 2, cfg.Output.MatrixPrecision)
	require.NoError(t, cfg.Validate())
	assert.Len(t, cfg.CalculusOptions(), 3)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }},
		{"zero steps", func(c *Config) { c.Numeric.Steps = 0 }},
		{"negative tolerance", func(c *Config) { c.Numeric.Tolerance = -1 }},
		{"zero iterations", func(c *Config) { c.Numeric.MaxIterations = 0 }},
		{"bad output format", func(c *Config) { c.Output.Format = "json" }},
		{"negative precision", func(c *Config) { c.Output.MatrixPrecision = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoad_NoFile(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "numlab.yaml")
	content := `
log:
  level: debug
numeric:
  steps: 200
  tolerance: 1e-8
output:
  format: yaml
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	t.Setenv("NUMLAB_NUMERIC_MAX_ITERATIONS", "50")

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format, "unset keys keep defaults")
	assert.Equal(t, 200, cfg.Numeric.Steps)
	assert.Equal(t, 1e-8, cfg.Numeric.Tolerance)
	assert.Equal(t, 50, cfg.Numeric.MaxIterations)
	assert.Equal(t, OutputYAML, cfg.Output.Format)

	// The kernel honours the configured step count.
	area, err := calculus.Integral(func(x float64) float64 { return x * x }, 0, 1, cfg.CalculusOptions()...)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3.0, area, 1e-12)
}

func TestLoad_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "numlab.yaml")
	require.NoError(t, os.WriteFile(path, []byte("numeric:\n  steps: -3\n"), 0o644))

	_, err := Load(viper.New(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "numeric.steps")
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(viper.New(), filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
