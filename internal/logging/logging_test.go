package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/fuelview/fuelview/internal/config"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel(" WARN "))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel(""))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("chatty"))
}

func TestNewLogger_Level(t *testing.T) {
	logger := NewLogger(config.LogConfig{Level: "warn"}, true)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}

func TestNewLogger_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "fuelview.log")
	logger := NewLogger(config.LogConfig{Level: "info", File: path, MaxSizeMB: 1}, false)

	logger.Info("dataset loaded", zap.Int("records", 6))
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"dataset loaded"`)
	assert.Contains(t, string(data), `"records":6`)
}

func TestNewLogger_NoSinksIsNop(t *testing.T) {
	logger := NewLogger(config.LogConfig{Level: "debug"}, false)
	assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
}
