package input

import (
	"io"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-forecast/internal/services/forecast"
	"weather-forecast/pkg/logger"
)

type MockPipeline struct {
	mu      sync.Mutex
	loading bool
	started []string
}

func (m *MockPipeline) Start(term string) *forecast.Task {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.started = append(m.started, term)
	return &forecast.Task{ID: "task", Term: term}
}

func (m *MockPipeline) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

func newTestController() (*Controller, *MockPipeline) {
	p := &MockPipeline{}
	return NewController(p, logger.NewZapLogger("test-app", io.Discard)), p
}

func TestController_DraftDoesNotReachPipeline(t *testing.T) {
	c, p := newTestController()

	require.NoError(t, c.SetDraft("B"))
	require.NoError(t, c.SetDraft("Be"))
	require.NoError(t, c.SetDraft("Berlin"))

	state := c.State()
	assert.Equal(t, "Berlin", state.Draft)
	assert.Empty(t, state.Committed)
	assert.True(t, state.Focused)
	assert.Empty(t, p.started)
}

func TestController_SubmitCommitsAndBlurs(t *testing.T) {
	c, p := newTestController()

	require.NoError(t, c.SetDraft("Berlin"))
	task := c.Submit()

	require.NotNil(t, task)
	assert.Equal(t, "Berlin", task.Term)
	assert.Equal(t, []string{"Berlin"}, p.started)

	state := c.State()
	assert.Equal(t, "Berlin", state.Committed)
	assert.False(t, state.Focused)

	// typing again refocuses but keeps the committed term
	require.NoError(t, c.SetDraft("Paris"))
	state = c.State()
	assert.Equal(t, "Berlin", state.Committed)
	assert.True(t, state.Focused)
}

func TestController_InputDisabledWhileLoading(t *testing.T) {
	c, p := newTestController()
	require.NoError(t, c.SetDraft("Berlin"))

	p.loading = true

	err := c.SetDraft("Paris")
	assert.ErrorIs(t, err, ErrInputDisabled)

	state := c.State()
	assert.True(t, state.Disabled)
	assert.Equal(t, "Berlin", state.Draft)
}

func TestController_SubmitPassesShortTermsThrough(t *testing.T) {
	c, p := newTestController()

	require.NoError(t, c.SetDraft("B"))
	c.Submit()

	assert.Equal(t, []string{"B"}, p.started)
}
