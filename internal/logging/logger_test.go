package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/birips/internal/metrics"
)

// TestNewLogger verifies basic logger creation
func TestNewLogger(t *testing.T) {
	tests := []struct {
		name   string
		format string
		level  string
	}{
		{"JSON Info", "json", "info"},
		{"JSON Debug", "json", "debug"},
		{"Text Warn", "text", "warn"},
		{"Console Error", "console", "error"},
		{"Defaults", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger, err := NewLogger(Config{Format: tt.format, Level: tt.level, Output: zapcore.AddSync(&buf)})
			require.NoError(t, err)
			logger.Error("heartbeat")
			assert.Contains(t, buf.String(), "heartbeat")
		})
	}
}

func TestNewLogger_Invalid(t *testing.T) {
	_, err := NewLogger(Config{Format: "json", Level: "verbose"})
	assert.Error(t, err)

	_, err = NewLogger(Config{Format: "xml", Level: "info"})
	assert.Error(t, err)
}

// TestStructuredLogging verifies fields reach the JSON output
func TestStructuredLogging(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(Config{Format: "json", Level: "info", Output: zapcore.AddSync(&buf)})
	require.NoError(t, err)

	logger.Info("grid built", zap.Int("n", 12), zap.String("run", "abc"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "grid built", entry["msg"])
	assert.Equal(t, float64(12), entry["n"])
	assert.Equal(t, "abc", entry["run"])
	assert.Contains(t, entry, "timestamp")
}

// TestLogLevelFiltering verifies that log levels are properly filtered
func TestLogLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(Config{Format: "json", Level: "warn", Output: zapcore.AddSync(&buf)})
	require.NoError(t, err)

	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Warn("kept")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "kept")
}

func TestMetricsHook_CountsPerLevel(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(Config{Format: "json", Level: "debug", Output: zapcore.AddSync(&buf)})
	require.NoError(t, err)
	child := logger.With(zap.String("component", "test"))

	before := testutil.ToFloat64(metrics.LogEntriesTotal.WithLabelValues("warn"))
	child.Warn("one")
	child.Warn("two")
	after := testutil.ToFloat64(metrics.LogEntriesTotal.WithLabelValues("warn"))
	assert.Equal(t, before+2, after)
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	require.NotNil(t, logger)
	assert.False(t, logger.Core().Enabled(zapcore.ErrorLevel))
}
