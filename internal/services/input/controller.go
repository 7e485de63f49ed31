package input

import (
	"errors"
	"sync"

	"weather-forecast/internal/services/forecast"
	"weather-forecast/pkg/logger"
)

// ErrInputDisabled is returned for edits made while a search is loading.
var ErrInputDisabled = errors.New("input is disabled while loading")

type Pipeline interface {
	Start(term string) *forecast.Task
	Loading() bool
}

// State is what the search form needs to render itself.
type State struct {
	Draft     string `json:"draft"`
	Committed string `json:"committed"`
	Focused   bool   `json:"focused"`
	Disabled  bool   `json:"disabled"`
}

// Controller keeps the text being typed apart from the term last submitted.
// Only Submit reaches the pipeline.
type Controller struct {
	pipeline Pipeline
	l        *logger.Logger

	mu        sync.Mutex
	draft     string
	committed string
	focused   bool
}

func NewController(pipeline Pipeline, l *logger.Logger) *Controller {
	return &Controller{
		pipeline: pipeline,
		l:        l,
		focused:  true,
	}
}

func (c *Controller) SetDraft(text string) error {
	if c.pipeline.Loading() {
		return ErrInputDisabled
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.draft = text
	c.focused = true
	return nil
}

// Submit commits the draft, drops focus and hands the term to the pipeline.
func (c *Controller) Submit() *forecast.Task {
	c.mu.Lock()
	c.committed = c.draft
	c.focused = false
	term := c.committed
	c.mu.Unlock()

	c.l.Debug("search term committed", map[string]any{"term": term})

	return c.pipeline.Start(term)
}

func (c *Controller) State() State {
	disabled := c.pipeline.Loading()

	c.mu.Lock()
	defer c.mu.Unlock()

	return State{
		Draft:     c.draft,
		Committed: c.committed,
		Focused:   c.focused,
		Disabled:  disabled,
	}
}
