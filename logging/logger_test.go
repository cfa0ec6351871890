package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newFileLogger creates a logger writing to a temp file and returns the
// logger together with a function reading back the emitted lines.
func newFileLogger(t *testing.T, level string, format Format) (*Logger, func() []string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "out.log")
	logger, err := New(&Config{Level: level, Format: format, Output: path})
	require.NoError(t, err)

	readLines := func() []string {
		require.NoError(t, logger.Sync())
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	}

	return logger, readLines
}

func TestNew_JSONFormat(t *testing.T) {
	logger, readLines := newFileLogger(t, "info", FormatJSON)

	logger.Info("engine ready", zap.String("model_version", "v0.1.0"))

	lines := readLines()
	require.Len(t, lines, 1)

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	assert.Equal(t, "info", record["level"])
	assert.Equal(t, "engine ready", record["event"])
	assert.Equal(t, "v0.1.0", record["model_version"])
	assert.NotEmpty(t, record["timestamp"])
}

func TestNew_ConsoleFormatIsNotJSON(t *testing.T) {
	logger, readLines := newFileLogger(t, "info", FormatConsole)

	logger.Info("engine ready")

	lines := readLines()
	require.Len(t, lines, 1)

	var record map[string]interface{}
	assert.Error(t, json.Unmarshal([]byte(lines[0]), &record))
	assert.Contains(t, lines[0], "engine ready")
}

func TestNew_UnrecognizedFormatFallsBackToJSON(t *testing.T) {
	logger, readLines := newFileLogger(t, "info", Format("logfmt"))

	logger.Info("engine ready")

	lines := readLines()
	require.Len(t, lines, 1)

	var record map[string]interface{}
	assert.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
}

func TestNew_LevelFiltering(t *testing.T) {
	logger, readLines := newFileLogger(t, "warn", FormatJSON)

	logger.Debug("dropped debug")
	logger.Info("dropped info")
	logger.Warn("kept warn")
	logger.Error("kept error")

	lines := readLines()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "kept warn")
	assert.Contains(t, lines[1], "kept error")
}

func TestNew_UnknownLevelDefaultsToInfo(t *testing.T) {
	logger, readLines := newFileLogger(t, "chatty", FormatJSON)

	logger.Debug("dropped debug")
	logger.Info("kept info")

	lines := readLines()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "kept info")
}

func TestLogger_Named(t *testing.T) {
	logger, readLines := newFileLogger(t, "info", FormatJSON)

	logger.Named("health").Info("probe evaluated")

	lines := readLines()
	require.Len(t, lines, 1)

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	assert.Equal(t, "health", record["logger"])
}

func TestLogger_With(t *testing.T) {
	logger, readLines := newFileLogger(t, "info", FormatJSON)

	logger.With(zap.String("request_id", "abc-123")).Info("handled")

	lines := readLines()
	require.Len(t, lines, 1)

	var record map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	assert.Equal(t, "abc-123", record["request_id"])
}

func TestNew_NilConfigUsesDefaults(t *testing.T) {
	logger, err := New(nil)

	require.NoError(t, err)
	assert.NotNil(t, logger)
}
