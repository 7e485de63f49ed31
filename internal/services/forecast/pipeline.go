package forecast

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"weather-forecast/internal/models"
	"weather-forecast/internal/repositories"
	"weather-forecast/pkg/logger"
)

// MinTermLength is the shortest term, in characters, that triggers a lookup.
const MinTermLength = 2

type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

var (
	// ErrEmptyResult means the geocoder returned no candidates for the term.
	ErrEmptyResult = errors.New("no location found")
	// ErrCanceled means the search was superseded or canceled before its
	// outcome was applied.
	ErrCanceled = errors.New("search canceled")
)

// Result is the outcome of one search. Status is empty when the search was
// canceled or superseded.
type Result struct {
	SearchID string           `json:"search_id"`
	Term     string           `json:"term"`
	Status   Status           `json:"status"`
	Location *models.Location `json:"location,omitempty"`
	Forecast models.Forecast  `json:"forecast"`
}

// Snapshot is the latest pipeline state as seen by the view.
type Snapshot struct {
	SearchID             string                 `json:"search_id,omitempty"`
	Term                 string                 `json:"term"`
	Status               Status                 `json:"status"`
	Loading              bool                   `json:"loading"`
	Location             *models.Location       `json:"location,omitempty"`
	Days                 []models.DailyForecast `json:"days"`
	TimezoneAbbreviation string                 `json:"timezone_abbreviation,omitempty"`
	Error                string                 `json:"error,omitempty"`
	UpdatedAt            time.Time              `json:"updated_at"`
}

// Pipeline resolves a search term to a location and fetches its daily
// forecast. Every Start supersedes the previous one: the previous requests are
// canceled and a generation counter guards every state write, so a stale
// search can never overwrite a newer one.
type Pipeline struct {
	geocoder  repositories.Geocoder
	forecasts repositories.ForecastRepository
	l         *logger.Logger

	base context.Context
	now  func() time.Time

	mu         sync.RWMutex
	generation uint64
	cancel     context.CancelFunc
	snapshot   Snapshot
	before     Snapshot
}

// NewPipeline ties all searches to base; canceling base aborts them.
func NewPipeline(base context.Context, repos repositories.Repositories, l *logger.Logger) *Pipeline {
	return &Pipeline{
		geocoder:  repos.Geocoder,
		forecasts: repos.Forecast,
		l:         l,
		base:      base,
		now:       time.Now,
		snapshot:  Snapshot{Status: StatusIdle, UpdatedAt: time.Now()},
	}
}

// Snapshot returns a copy of the current state.
func (p *Pipeline) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return copySnapshot(p.snapshot)
}

// Loading reports whether the current search is in flight.
func (p *Pipeline) Loading() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.snapshot.Loading
}

// ResolveAndFetch starts a search for term and waits for it. If ctx ends first
// the search is canceled.
func (p *Pipeline) ResolveAndFetch(ctx context.Context, term string) (Result, error) {
	task := p.Start(term)

	res, err := task.Wait(ctx)
	if ctx.Err() != nil {
		task.Cancel()
	}
	return res, err
}

// Start cancels any in-flight search and begins a new one for term. Terms
// shorter than MinTermLength reset the state to Idle without any request.
func (p *Pipeline) Start(term string) *Task {
	id := uuid.NewString()

	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.generation++
	gen := p.generation

	if utf8.RuneCountInString(term) < MinTermLength {
		p.snapshot = Snapshot{SearchID: id, Term: term, Status: StatusIdle, UpdatedAt: p.now()}
		p.mu.Unlock()

		p.l.Debug("search term too short, state reset", map[string]any{"term": term})

		task := newTask(id, term, nil)
		task.finish(Result{SearchID: id, Term: term, Status: StatusIdle}, nil)
		return task
	}

	ctx, cancel := context.WithCancel(p.base)
	p.cancel = cancel
	if !p.snapshot.Loading {
		p.before = copySnapshot(p.snapshot)
	}
	p.snapshot.SearchID = id
	p.snapshot.Term = term
	p.snapshot.Status = StatusLoading
	p.snapshot.Loading = true
	p.snapshot.Error = ""
	p.snapshot.UpdatedAt = p.now()
	p.mu.Unlock()

	p.l.Info("search started", map[string]any{"search_id": id, "term": term, "generation": gen})

	task := newTask(id, term, cancel)
	go func() {
		var (
			res Result
			err error
		)
		defer func() {
			cancel()
			err = p.release(gen, &res, err)
			task.finish(res, err)
		}()

		res, err = p.run(ctx, id, term)
	}()

	return task
}

// Lookup runs a resolve-and-fetch without touching the pipeline state.
func (p *Pipeline) Lookup(ctx context.Context, term string) (Result, error) {
	id := uuid.NewString()
	if utf8.RuneCountInString(term) < MinTermLength {
		return Result{SearchID: id, Term: term, Status: StatusIdle}, nil
	}

	res, err := p.run(ctx, id, term)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return res, fmt.Errorf("%w: %v", ErrCanceled, err)
		}
		res.Status = StatusError
		return res, err
	}
	return res, nil
}

// Close cancels the in-flight search, if any.
func (p *Pipeline) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

func (p *Pipeline) run(ctx context.Context, id, term string) (Result, error) {
	res := Result{SearchID: id, Term: term, Status: StatusLoading}

	candidates, err := p.geocoder.Search(ctx, term)
	if err != nil {
		return res, fmt.Errorf("geocoding %q: %w", term, err)
	}
	if len(candidates) == 0 {
		return res, fmt.Errorf("%w for %q", ErrEmptyResult, term)
	}

	loc := candidates[0]
	res.Location = &loc

	p.l.Info("location resolved", map[string]any{
		"search_id": id,
		"name":      loc.Name,
		"country":   loc.Country,
		"flag":      loc.Flag(),
		"timezone":  loc.Timezone,
	})

	forecast, err := p.forecasts.FetchDaily(ctx, loc)
	if err != nil {
		return res, fmt.Errorf("forecast for %s: %w", loc.DisplayName(), err)
	}

	res.Forecast = forecast
	res.Status = StatusSuccess
	return res, nil
}

// release applies the outcome of generation gen, exactly once per search. A
// superseded generation writes nothing and reports ErrCanceled.
func (p *Pipeline) release(gen uint64, res *Result, err error) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if gen != p.generation {
		res.Status = ""

		p.l.Debug("discarding superseded search", map[string]any{
			"search_id":  res.SearchID,
			"generation": gen,
		})
		if err == nil || !errors.Is(err, context.Canceled) {
			return ErrCanceled
		}
		return fmt.Errorf("%w: %v", ErrCanceled, err)
	}

	p.cancel = nil

	switch {
	case err == nil:
		p.snapshot = Snapshot{
			SearchID:             res.SearchID,
			Term:                 res.Term,
			Status:               StatusSuccess,
			Location:             res.Location,
			Days:                 res.Forecast.Days,
			TimezoneAbbreviation: res.Forecast.TimezoneAbbreviation,
			UpdatedAt:            p.now(),
		}
		p.l.Info("search succeeded", map[string]any{"search_id": res.SearchID, "days": len(res.Forecast.Days)})
		return nil

	case errors.Is(err, context.Canceled):
		// canceled without a newer search: back to where we were
		res.Status = ""
		p.snapshot = p.before
		p.snapshot.Loading = false
		p.snapshot.UpdatedAt = p.now()
		p.l.Debug("search canceled", map[string]any{"search_id": res.SearchID})
		return fmt.Errorf("%w: %v", ErrCanceled, err)

	default:
		res.Status = StatusError
		p.snapshot = Snapshot{
			SearchID:  res.SearchID,
			Term:      res.Term,
			Status:    StatusError,
			Location:  res.Location,
			Error:     err.Error(),
			UpdatedAt: p.now(),
		}
		if errors.Is(err, ErrEmptyResult) {
			p.l.Warning("search returned no location", map[string]any{"search_id": res.SearchID, "term": res.Term})
		} else {
			p.l.Error(err, map[string]any{"search_id": res.SearchID, "term": res.Term})
		}
		return err
	}
}

func copySnapshot(s Snapshot) Snapshot {
	out := s
	if s.Location != nil {
		loc := *s.Location
		out.Location = &loc
	}
	if s.Days != nil {
		out.Days = make([]models.DailyForecast, len(s.Days))
		copy(out.Days, s.Days)
	}
	return out
}
