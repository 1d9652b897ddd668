package logger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/icelens/icelens/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name string
		cfg  config.LoggingConfig
	}{
		{name: "text to stderr", cfg: config.LoggingConfig{Level: "info", Format: "text", Output: "stderr"}},
		{name: "json to stdout", cfg: config.LoggingConfig{Level: "debug", Format: "json", Output: "stdout"}},
		{name: "empty defaults", cfg: config.LoggingConfig{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New(&tt.cfg)
			require.NoError(t, err)
			require.NotNil(t, log)
			assert.NotNil(t, log.SugaredLogger)
		})
	}
}

func TestNewDefault(t *testing.T) {
	log := NewDefault()
	require.NotNil(t, log)
	log.Infow("default logger works", "key", "value")
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "icelens.log")
	log, err := New(&config.LoggingConfig{Level: "info", Format: "json", Output: path})
	require.NoError(t, err)

	log.Infow("written to file", "n", 1)
	require.NoError(t, log.Sync())
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zapcore.Level
	}{
		{"debug", zapcore.DebugLevel},
		{"info", zapcore.InfoLevel},
		{"", zapcore.InfoLevel},
		{"warn", zapcore.WarnLevel},
		{"error", zapcore.ErrorLevel},
		{"bogus", zapcore.InfoLevel},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, parseLevel(tt.input), tt.input)
	}
}

func TestContextHelpers(t *testing.T) {
	log := NewDefault()

	withTable := log.WithTable("sales", "orders")
	require.NotNil(t, withTable)
	assert.NotSame(t, log, withTable)

	withView := log.WithView("snapshots")
	require.NotNil(t, withView)

	withProc := log.WithProcedure("expire_snapshots")
	require.NotNil(t, withProc)

	withFields := log.WithFields(map[string]interface{}{"attempt": 1, "outcome": "failed"})
	require.NotNil(t, withFields)
	withFields.Infow("context helpers attach fields without panicking")
}
