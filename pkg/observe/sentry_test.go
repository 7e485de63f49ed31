package observe

import (
	"bytes"
	"errors"
	"testing"

	"github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-forecast/pkg/logger"
)

func newTestHook() (*SentryHook, *[]*sentry.Event) {
	var captured []*sentry.Event
	h := &SentryHook{
		appEnv:  "production",
		appName: "test-app",
		capture: func(event *sentry.Event) *sentry.EventID {
			captured = append(captured, event)
			return nil
		},
	}
	return h, &captured
}

func TestNewSentryHook_RequiresDSN(t *testing.T) {
	_, err := NewSentryHook("production", "test-app", 0, false, "")
	assert.Error(t, err)
}

func TestSentryHook_ForwardsErrorEntries(t *testing.T) {
	h, captured := newTestHook()
	l := logger.NewZapLogger("test-app", &bytes.Buffer{}, h)

	l.Info("not forwarded")
	l.Warning("not forwarded either")
	l.Error(errors.New("forecast lookup failed"), map[string]any{"term": "Berlin"})

	require.Len(t, *captured, 1)
	event := (*captured)[0]
	assert.Equal(t, "forecast lookup failed", event.Message)
	assert.Equal(t, sentry.LevelError, event.Level)
	assert.Equal(t, "production", event.Environment)
	assert.Equal(t, "test-app", event.Extra["AppName"])
	assert.Equal(t, "forecast lookup failed", event.Extra["Error"])
	require.Len(t, event.Exception, 1)
}

func TestSentryHook_IgnoresGarbage(t *testing.T) {
	h, captured := newTestHook()

	n, err := h.Write([]byte("not json"))
	require.NoError(t, err)
	assert.Equal(t, len("not json"), n)

	_, err = h.Write([]byte(`{"level":"nope","msg":"x"}`))
	require.NoError(t, err)

	assert.Empty(t, *captured)
}
