// Package config loads runtime settings for the web server from the
// environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every setting the server reads at startup.
type Config struct {
	// Port resolution: prefer KNOWLEDGEHUB_WEB_PORT, then Cloud Run's PORT, else 8080.
	Port      string `env:"KNOWLEDGEHUB_WEB_PORT"`
	CloudPort string `env:"PORT"`
	Addr      string `env:"KNOWLEDGEHUB_WEB_ADDR"`

	Env          string `env:"KNOWLEDGEHUB_WEB_ENV" envDefault:"dev"`
	Dev          bool   `env:"KNOWLEDGEHUB_WEB_DEV"`
	TemplatesDir string `env:"KNOWLEDGEHUB_WEB_TEMPLATES_DIR"`
	BaseURL      string `env:"KNOWLEDGEHUB_WEB_BASE_URL" envDefault:"http://localhost:8080"`
	DefaultLang  string `env:"KNOWLEDGEHUB_WEB_DEFAULT_LANG" envDefault:"en"`

	LogLevel  string `env:"KNOWLEDGEHUB_WEB_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"KNOWLEDGEHUB_WEB_LOG_FORMAT" envDefault:"json"`

	Metrics        bool    `env:"KNOWLEDGEHUB_WEB_METRICS" envDefault:"true"`
	RateLimitRPS   float64 `env:"KNOWLEDGEHUB_WEB_RATE_LIMIT_RPS" envDefault:"0"`
	RateLimitBurst int     `env:"KNOWLEDGEHUB_WEB_RATE_LIMIT_BURST" envDefault:"20"`

	RequestTimeout  time.Duration `env:"KNOWLEDGEHUB_WEB_REQUEST_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"KNOWLEDGEHUB_WEB_SHUTDOWN_TIMEOUT" envDefault:"10s"`

	Analytics Analytics
}

// Analytics holds client instrumentation configuration surfaced to templates.
type Analytics struct {
	GA4MeasurementID string `env:"KNOWLEDGEHUB_WEB_GA_MEASUREMENT_ID"` // e.g. G-XXXXXXXXXX
	GTMContainerID   string `env:"KNOWLEDGEHUB_WEB_GTM_CONTAINER_ID"`  // e.g. GTM-XXXXXXX
	SegmentWriteKey  string `env:"KNOWLEDGEHUB_WEB_SEGMENT_WRITE_KEY"` // Segment browser key
	Debug            bool   `env:"KNOWLEDGEHUB_WEB_ANALYTICS_DEBUG"`
}

// Enabled reports whether any analytics provider is configured.
func (a Analytics) Enabled() bool {
	return a.GA4MeasurementID != "" || a.GTMContainerID != "" || a.SegmentWriteKey != ""
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values env parsing cannot express.
func (c Config) Validate() error {
	switch strings.ToLower(c.LogFormat) {
	case "json", "console":
	default:
		return fmt.Errorf("config: unknown log format %q", c.LogFormat)
	}
	if c.RateLimitRPS < 0 {
		return fmt.Errorf("config: rate limit rps must not be negative")
	}
	if c.RateLimitRPS > 0 && c.RateLimitBurst <= 0 {
		return fmt.Errorf("config: rate limit burst must be positive")
	}
	if c.RequestTimeout <= 0 || c.ShutdownTimeout <= 0 {
		return fmt.Errorf("config: timeouts must be positive")
	}
	if strings.TrimSpace(c.DefaultLang) == "" {
		return fmt.Errorf("config: default language is required")
	}
	return nil
}

// ListenAddr returns the address the HTTP server binds to.
func (c Config) ListenAddr() string {
	if c.Addr != "" {
		return c.Addr
	}
	port := c.Port
	if port == "" {
		port = c.CloudPort
	}
	if port == "" {
		port = "8080"
	}
	return ":" + port
}

// Production reports whether the server runs in the prod environment.
func (c Config) Production() bool {
	return strings.EqualFold(c.Env, "prod")
}
