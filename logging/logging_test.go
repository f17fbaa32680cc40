package logging_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/0xalexb/hjarta-conf/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any

	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry), "output should be one JSON line: %s", buf.String())

	return entry
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	testCases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		"Info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"WARNING": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"LOUD":    slog.LevelInfo,
	}

	for input, want := range testCases {
		assert.Equal(t, want, logging.ParseLevel(input), input)
	}
}

func TestNewLogger_JSONByDefault(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logging.NewLogger(logging.LoggerConfig{}, &buf)
	logger.Info("token resolved", slog.String("path", "db.url"))

	entry := jsonEntry(t, &buf)
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "token resolved", entry["msg"])
	assert.Equal(t, "db.url", entry["path"])
}

func TestNewLogger_TextFormat(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logging.NewLogger(logging.LoggerConfig{Level: "debug", Format: "TEXT"}, &buf)
	logger.Debug("resolved", slog.String("path", "app.port"))

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "msg=resolved")
	assert.Contains(t, buf.String(), "path=app.port")
}

func TestNewLogger_DropsBelowLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	logger := logging.NewLogger(logging.LoggerConfig{Level: "warn"}, &buf)
	logger.Info("dropped")
	logger.Debug("dropped")
	require.Empty(t, buf.String())

	logger.Warn("kept")
	assert.Equal(t, "WARN", jsonEntry(t, &buf)["level"])
}

func TestLoggerConfig_DefaultsAndValidate(t *testing.T) {
	t.Parallel()

	var config logging.LoggerConfig

	require.True(t, config.SetDefaults())
	assert.Equal(t, "info", config.Level)
	assert.Equal(t, logging.FormatJSON, config.Format)
	assert.False(t, config.SetDefaults())
	require.NoError(t, config.Validate())

	config.Format = "xml"
	require.ErrorIs(t, config.Validate(), logging.ErrUnknownFormat)
}
