// Package testutil holds helpers shared by HTTP tests.
package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"knowledgehub.dev/hub-web/internal/httpserver"
	"knowledgehub.dev/hub-web/internal/metrics"
)

// ServerOption customises the HTTP server configuration for tests.
type ServerOption func(*httpserver.Config)

// WithRateLimit enables the per-client rate limiter.
func WithRateLimit(rps float64, burst int) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.RateLimitRPS = rps
		cfg.RateLimitBurst = burst
	}
}

// WithRegistry records metrics into reg.
func WithRegistry(reg *metrics.Registry) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Registry = reg
	}
}

// WithLogOutput sends request logs to w.
func WithLogOutput(w io.Writer) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Logger = zerolog.New(w)
	}
}

// WithConfig applies an arbitrary change to the server configuration.
func WithConfig(fn func(*httpserver.Config)) ServerOption {
	return fn
}

// NewHandler builds the web HTTP stack with test defaults.
func NewHandler(t testing.TB, opts ...ServerOption) http.Handler {
	t.Helper()

	cfg := httpserver.Config{
		Address:        ":0",
		BaseURL:        "http://hub.test",
		DefaultLang:    "en",
		Metrics:        true,
		RequestTimeout: 5 * time.Second,
		Logger:         zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	srv, err := httpserver.New(cfg)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	return srv.Handler
}

// NewServer constructs an httptest server running the web HTTP stack with sensible defaults.
func NewServer(t testing.TB, opts ...ServerOption) *httptest.Server {
	t.Helper()

	ts := httptest.NewServer(NewHandler(t, opts...))
	t.Cleanup(ts.Close)
	return ts
}
