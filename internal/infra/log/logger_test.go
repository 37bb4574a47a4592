package logs

import (
	"bytes"
	"encoding/json"
	"testing"

	"mrisafe/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONAtConfiguredLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "mrisafe"
	cfg.Env.Log.Level = "warn"
	var buf bytes.Buffer

	logger, err := New(Params{Config: cfg, Output: &buf})
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "mrisafe", entry["service"])
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "verbose"

	_, err := New(Params{Config: cfg})
	assert.ErrorContains(t, err, "unknown log level: verbose")
}

func TestParseLogLevel(t *testing.T) {
	for input, want := range map[string]string{
		"debug": "DEBUG",
		"INFO":  "INFO",
		"Warn":  "WARN",
		"error": "ERROR",
	} {
		level, err := parseLogLevel(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, level.String(), input)
	}
}
