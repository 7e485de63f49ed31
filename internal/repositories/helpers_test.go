package repositories

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"weather-forecast/config"
	"weather-forecast/pkg/logger"
)

func newTestLogger() *logger.Logger {
	return logger.NewZapLogger("test-app", io.Discard)
}

// newCountingServer serves handler and counts the requests it receives.
func newCountingServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *int32) {
	t.Helper()

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	return srv, &calls
}

func testAPI(name, baseURL string) config.WeatherAPIConfig {
	return config.WeatherAPIConfig{Name: name, BaseURL: baseURL, Timeout: 5}
}

func fastBackoff(u *upstream, retries int) {
	u.backoff = BackoffConfig{
		MaxRetries:      retries,
		InitialInterval: time.Millisecond,
		MaxInterval:     5 * time.Millisecond,
	}
}
