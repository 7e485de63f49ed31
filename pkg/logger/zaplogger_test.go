package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()

	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}
	return out
}

func TestLogger_InfoWritesFieldsAndCaller(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{AppName: "test-app", AppEnv: "test"}, &buf)

	l.Info("search started", map[string]any{"term": "Berlin"})

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "info", entries[0]["level"])
	assert.Equal(t, "search started", entries[0]["msg"])
	assert.Equal(t, "Berlin", entries[0]["term"])
	assert.Equal(t, "test-app", entries[0]["app_name"])
	assert.Equal(t, "test", entries[0]["app_env"])
	assert.Contains(t, entries[0]["caller_file"], "zaplogger_test.go")
}

func TestLogger_ErrorIncludesErrorAndStack(t *testing.T) {
	var buf bytes.Buffer
	l := NewZapLogger("test-app", &buf)

	l.Error(errors.New("upstream down"), map[string]any{"upstream": "open-meteo"})

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "error", entries[0]["level"])
	assert.Equal(t, "upstream down", entries[0]["error"])
	assert.Equal(t, "open-meteo", entries[0]["upstream"])
	assert.NotEmpty(t, entries[0]["stack"])
	assert.Contains(t, entries[0]["caller_file"], "zaplogger_test.go")
}

func TestLogger_LevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	l := New(Options{AppName: "test-app", Level: "info"}, &buf)

	l.Debug("hidden")
	l.Warning("shown")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "warn", entries[0]["level"])
}

func TestLogger_LogKeyvals(t *testing.T) {
	var buf bytes.Buffer
	l := NewZapLogger("test-app", &buf)

	require.NoError(t, l.Log("a", 1, 2, "b", "dangling"))

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.EqualValues(t, 1, entries[0]["a"])
	assert.Equal(t, "b", entries[0]["invalid-key"])
}
