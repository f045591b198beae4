package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		format    string
		wantError bool
	}{
		{name: "valid json debug", level: "debug", format: "json"},
		{name: "valid console info", level: "info", format: "console"},
		{name: "valid json warn", level: "warn", format: "json"},
		{name: "valid console error", level: "error", format: "console"},
		{name: "invalid level", level: "invalid", format: "json", wantError: true},
		{name: "invalid format", level: "info", format: "invalid", wantError: true},
		{name: "case insensitive level", level: "INFO", format: "json"},
		{name: "case insensitive format", level: "info", format: "JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewLogger(tt.level, tt.format)
			if tt.wantError {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, logger)
		})
	}
}

func TestNewLogger_LevelApplied(t *testing.T) {
	logger, err := NewLogger("warn", "json")
	require.NoError(t, err)

	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}
