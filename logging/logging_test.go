package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	level, err = ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestJSONLogger(t *testing.T) {
	var out bytes.Buffer
	logger, err := New(Config{Level: "info", Format: JSON, Writer: &out})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("solved", "sweeps", 3)

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &record))
	assert.Equal(t, "solved", record["msg"])
	assert.Equal(t, 3.0, record["sweeps"])
}

func TestTextLogger(t *testing.T) {
	var out bytes.Buffer
	logger, err := New(Config{Level: "debug", Writer: &out})
	require.NoError(t, err)

	logger.Debug("step", "episode", 1)
	assert.Contains(t, out.String(), "msg=step episode=1")

	_, err = New(Config{Format: "xml"})
	assert.Error(t, err)
}
