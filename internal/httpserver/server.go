// Package httpserver wires the router, middleware stack and page handlers.
package httpserver

import (
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	contentfs "knowledgehub.dev/hub-web/content"
	"knowledgehub.dev/hub-web/internal/cms"
	"knowledgehub.dev/hub-web/internal/config"
	"knowledgehub.dev/hub-web/internal/handlers"
	"knowledgehub.dev/hub-web/internal/i18n"
	"knowledgehub.dev/hub-web/internal/metrics"
	mw "knowledgehub.dev/hub-web/internal/middleware"
	"knowledgehub.dev/hub-web/internal/routes"
	"knowledgehub.dev/hub-web/locales"
	"knowledgehub.dev/hub-web/public"
	"knowledgehub.dev/hub-web/templates"
)

// pageTarget is the id of the element boosted navigation swaps.
const pageTarget = "page"

// Config holds runtime options for the web server.
type Config struct {
	Address     string
	BaseURL     string
	DefaultLang string
	Production  bool

	// Dev reparses templates per request, from TemplatesDir when set.
	Dev          bool
	TemplatesDir string

	Metrics        bool
	RateLimitRPS   float64
	RateLimitBurst int
	RequestTimeout time.Duration

	Analytics config.Analytics
	Logger    zerolog.Logger

	// Optional overrides of the embedded trees, used by tests.
	Templates fs.FS
	Content   fs.FS
	Locales   fs.FS
	Assets    fs.FS
	Registry  *metrics.Registry
}

// ConfigFrom maps process configuration onto server options.
func ConfigFrom(cfg config.Config, log zerolog.Logger) Config {
	return Config{
		Address:        cfg.ListenAddr(),
		BaseURL:        cfg.BaseURL,
		DefaultLang:    cfg.DefaultLang,
		Production:     cfg.Production(),
		Dev:            cfg.Dev,
		TemplatesDir:   cfg.TemplatesDir,
		Metrics:        cfg.Metrics,
		RateLimitRPS:   cfg.RateLimitRPS,
		RateLimitBurst: cfg.RateLimitBurst,
		RequestTimeout: cfg.RequestTimeout,
		Analytics:      cfg.Analytics,
		Logger:         log,
	}
}

// New constructs the HTTP server with middleware stack and embedded assets.
func New(cfg Config) (*http.Server, error) {
	if cfg.DefaultLang == "" {
		cfg.DefaultLang = "en"
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 30 * time.Second
	}
	if cfg.Registry == nil {
		cfg.Registry = metrics.NewRegistry()
	}

	tmplFS := cfg.Templates
	if tmplFS == nil {
		tmplFS = templates.FS()
		if cfg.Dev && cfg.TemplatesDir != "" {
			tmplFS = os.DirFS(cfg.TemplatesDir)
		}
	}
	renderer, err := NewRenderer(tmplFS, cfg.Dev)
	if err != nil {
		return nil, err
	}

	localeFS := cfg.Locales
	if localeFS == nil {
		localeFS = locales.FS()
	}
	bundle, err := i18n.Load(localeFS, cfg.DefaultLang, nil)
	if err != nil {
		return nil, fmt.Errorf("load i18n: %w", err)
	}

	copyFS := cfg.Content
	if copyFS == nil {
		copyFS = contentfs.FS()
	}
	var libOpts []cms.Option
	if cfg.Dev {
		libOpts = append(libOpts, cms.WithCacheTTL(0))
	}
	library := cms.NewLibrary(copyFS, cfg.DefaultLang, libOpts...)

	assetFS := cfg.Assets
	if assetFS == nil {
		if assetFS, err = public.AssetsFS(); err != nil {
			return nil, fmt.Errorf("embed assets: %w", err)
		}
	}

	pages := &pageHandler{
		builder: handlers.NewBuilder(bundle, library, handlers.Options{
			BaseURL:   cfg.BaseURL,
			Analytics: cfg.Analytics,
		}),
		renderer:    renderer,
		metrics:     cfg.Registry,
		log:         cfg.Logger,
		defaultLang: cfg.DefaultLang,
	}

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(mw.PeerIP)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP.
	router.Use(chimw.RealIP)
	router.Use(mw.Logger(cfg.Logger))
	router.Use(chimw.Recoverer)
	if cfg.Metrics {
		router.Use(mw.Metrics(cfg.Registry))
	}
	router.Use(mw.HTMX)
	if cfg.RateLimitRPS > 0 {
		router.Use(mw.RateLimit(mw.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst), cfg.Registry))
	}
	router.Use(chimw.Compress(5))
	router.Use(chimw.Timeout(cfg.RequestTimeout))
	router.Use(chimw.GetHead)

	router.Get("/healthz", healthz)
	if cfg.Metrics {
		router.Method(http.MethodGet, "/metrics", cfg.Registry.Handler())
	}
	router.Handle("/assets/*", mw.AssetsWithCache("/assets", assetFS))
	router.Get("/robots.txt", robots(cfg.BaseURL))
	router.Get("/sitemap.xml", sitemap(cfg.BaseURL))

	router.Group(func(r chi.Router) {
		r.Use(mw.Locale(bundle, cfg.Production))
		r.Use(mw.VaryLocale)
		mountPageRoutes(r, pages)
		r.NotFound(pages.notFound)
	})

	return &http.Server{
		Addr:              cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}, nil
}

// mountPageRoutes registers one GET handler per entry of the route table.
func mountPageRoutes(r chi.Router, pages *pageHandler) {
	for _, rt := range routes.All() {
		h := pages.serve(rt, http.StatusOK)
		if rt.NoIndex {
			r.With(mw.NoIndex).Get(rt.Path, h)
			continue
		}
		r.Get(rt.Path, h)
	}
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
