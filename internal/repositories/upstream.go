package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"weather-forecast/config"
	"weather-forecast/pkg/logger"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

var (
	ErrRateLimited      = errors.New("rate limited")
	ErrServerError      = errors.New("server error")
	ErrUnexpectedStatus = errors.New("unexpected status code")
	ErrCircuitOpen      = errors.New("circuit breaker open")
	ErrNoHTTPClient     = errors.New("http client not configured")
)

// BackoffConfig controls exponential backoff behaviour.
type BackoffConfig struct {
	MaxRetries      int
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// OpenMeteoErrorResponse is the body Open-Meteo returns with 4xx statuses.
type OpenMeteoErrorResponse struct {
	Error   bool   `json:"error"`
	Reason  string `json:"reason"`
	Message string `json:"message,omitempty"`
}

// upstream executes GET requests against one API with rate limiting, retries
// with exponential backoff and a circuit breaker.
type upstream struct {
	name       string
	baseURL    string
	httpClient HTTPClient
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker
	backoff    BackoffConfig
	l          *logger.Logger
}

func newUpstream(api config.WeatherAPIConfig, defaultURL string, l *logger.Logger, httpClient HTTPClient) *upstream {
	baseURL := api.BaseURL
	if baseURL == "" {
		baseURL = defaultURL
	}

	var limiter *rate.Limiter
	if api.RateLimit > 0 {
		burst := api.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(api.RateLimit), burst)
	}

	return &upstream{
		name:       api.Name,
		baseURL:    baseURL,
		httpClient: httpClient,
		limiter:    limiter,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:        api.Name,
			MaxRequests: 5,
			Interval:    1 * time.Minute,
			Timeout:     30 * time.Second,
			IsSuccessful: func(err error) bool {
				return err == nil || errors.Is(err, context.Canceled) || errors.Is(err, ErrUnexpectedStatus)
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				l.Warning("circuit breaker state changed", map[string]any{
					"upstream": name,
					"from":     from.String(),
					"to":       to.String(),
				})
			},
		}),
		backoff: BackoffConfig{
			MaxRetries:      api.MaxRetries,
			InitialInterval: 250 * time.Millisecond,
			MaxInterval:     3 * time.Second,
		},
		l: l,
	}
}

// get returns the body of a 2xx response. A canceled ctx is returned as-is so
// callers can tell supersession from failure with errors.Is(err, context.Canceled).
func (u *upstream) get(ctx context.Context, rawURL string) ([]byte, error) {
	if u.httpClient == nil {
		return nil, ErrNoHTTPClient
	}

	for attempt := 0; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if u.limiter != nil {
			if err := u.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("rate limit wait canceled: %w", err)
			}
		}

		result, err := u.breaker.Execute(func() (interface{}, error) {
			return u.once(ctx, rawURL)
		})
		if err == nil {
			return result.([]byte), nil
		}

		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("%w: %v", ErrCircuitOpen, err)
		}

		if !retryable(ctx, err) || attempt >= u.backoff.MaxRetries {
			return nil, err
		}

		delay := u.backoff.InitialInterval * time.Duration(math.Pow(2, float64(attempt)))
		if delay > u.backoff.MaxInterval && u.backoff.MaxInterval > 0 {
			delay = u.backoff.MaxInterval
		}

		u.l.Debug("retrying upstream request", map[string]any{
			"upstream": u.name,
			"attempt":  attempt + 1,
			"delay":    delay.String(),
			"err":      err.Error(),
		})

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

func (u *upstream) once(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := u.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	u.l.Debug("received upstream response", map[string]any{
		"upstream":   u.name,
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case resp.StatusCode >= 500:
		return nil, fmt.Errorf("%w (status %d)", ErrServerError, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		var errorResp OpenMeteoErrorResponse
		if jsonErr := json.Unmarshal(body, &errorResp); jsonErr == nil && errorResp.Error {
			return nil, fmt.Errorf("%w (status %d): %s", ErrUnexpectedStatus, resp.StatusCode, errorResp.Reason)
		}
		return nil, fmt.Errorf("%w (status %d): %s", ErrUnexpectedStatus, resp.StatusCode, resp.Status)
	}

	return body, nil
}

func retryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return !errors.Is(err, ErrUnexpectedStatus)
}
