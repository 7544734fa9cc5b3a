// Package infraguide serves the multi-region infrastructure site: a landing
// page and a tabbed deployment guide, rendered in Go and served over HTTP or
// exported as static files.
package infraguide

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/3-lines-studio/infraguide/internal/adapters/fs"
	"github.com/3-lines-studio/infraguide/internal/assets"
	"github.com/3-lines-studio/infraguide/internal/cache"
	"github.com/3-lines-studio/infraguide/internal/config"
	"github.com/3-lines-studio/infraguide/internal/core"
	"github.com/3-lines-studio/infraguide/internal/markdown"
	"github.com/3-lines-studio/infraguide/internal/metrics"
	"github.com/3-lines-studio/infraguide/internal/page"
)

type Document = page.Document

type View = page.View

type Route struct {
	Pattern string
	Name    string
	View    View
}

func Page(pattern, name string, view View) Route {
	return Route{
		Pattern: pattern,
		Name:    name,
		View:    view,
	}
}

type App struct {
	cfg      config.Config
	logger   *slog.Logger
	routes   []Route
	handlers map[string]*page.Handler
	bundle   *assets.Bundle
	cache    *cache.Cache
	metrics  *metrics.Metrics
	registry *prometheus.Registry
	fs       fs.FileSystem
}

type router interface {
	http.Handler
	Handle(pattern string, handler http.Handler)
}

func New(cfg config.Config, logger *slog.Logger, routes ...Route) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if len(routes) == 0 {
		return nil, fmt.Errorf("infraguide: no routes")
	}

	seen := make(map[string]bool, len(routes))
	for _, route := range routes {
		if err := core.ValidateRoutePath(route.Pattern); err != nil {
			return nil, fmt.Errorf("infraguide: route %q: %w", route.Name, err)
		}
		if route.Name == "" {
			return nil, fmt.Errorf("infraguide: route %s has no name", route.Pattern)
		}
		if route.View == nil {
			return nil, fmt.Errorf("infraguide: route %s has no view", route.Pattern)
		}
		key := core.NormalizePath(route.Pattern)
		if seen[key] {
			return nil, fmt.Errorf("infraguide: duplicate route %s", key)
		}
		seen[key] = true
	}

	var css bytes.Buffer
	if err := markdown.New(cfg.Site.HighlightStyle).CSS(&css); err != nil {
		return nil, fmt.Errorf("infraguide: highlight stylesheet: %w", err)
	}
	bundle, err := assets.NewBundle(map[string][]byte{"highlight.css": css.Bytes()})
	if err != nil {
		return nil, fmt.Errorf("infraguide: %w", err)
	}

	c, err := cache.New(cache.Config{
		Enabled:     cfg.Cache.Enabled && !cfg.Dev,
		NumCounters: cfg.Cache.NumCounters,
		MaxCost:     cfg.Cache.MaxCost,
		BufferItems: cfg.Cache.BufferItems,
		TTL:         cfg.Cache.TTL,
	})
	if err != nil {
		return nil, fmt.Errorf("infraguide: render cache: %w", err)
	}

	app := &App{
		cfg:      cfg,
		logger:   logger,
		routes:   routes,
		handlers: make(map[string]*page.Handler, len(routes)),
		bundle:   bundle,
		cache:    c,
		fs:       fs.NewOSFileSystem(),
	}

	if cfg.Metrics.Enabled {
		app.registry = prometheus.NewRegistry()
		app.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		app.metrics = metrics.New(app.registry)
	}

	for _, route := range routes {
		app.handlers[route.Pattern] = page.NewHandler(route.View, page.Options{
			Name: route.Name,
			Assets: page.Assets{
				Stylesheets: bundle.Stylesheets(),
				Scripts:     bundle.Scripts(),
			},
			Cache:   c,
			Metrics: app.metrics,
			Logger:  logger,
			IsDev:   cfg.Dev,
		})
	}

	return app, nil
}

// Wrap registers every page on api and returns a handler that serves
// /dist/ assets ahead of it.
func (a *App) Wrap(api router) http.Handler {
	if api == nil {
		panic("infraguide: nil router passed to Wrap; use app.Handler()")
	}

	_, isServeMux := api.(*http.ServeMux)
	for _, route := range a.routes {
		pattern := route.Pattern
		if isServeMux && pattern == "/" {
			pattern = "/{$}"
		}
		api.Handle(pattern, a.handlers[route.Pattern])
	}

	return createAssetHandler(api, a.bundle.Handler())
}

func (a *App) Handler() http.Handler {
	return a.Wrap(http.NewServeMux())
}

// Routes returns the registered routes in registration order.
func (a *App) Routes() []Route {
	out := make([]Route, len(a.routes))
	copy(out, a.routes)
	return out
}

// Registry is nil when metrics are disabled.
func (a *App) Registry() *prometheus.Registry {
	return a.registry
}

func (a *App) Logger() *slog.Logger {
	return a.logger
}

func (a *App) Config() config.Config {
	return a.cfg
}

func (a *App) Stop() error {
	a.cache.Close()
	return nil
}

func createAssetHandler(router http.Handler, assetHandler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if strings.HasPrefix(req.URL.Path, assets.Prefix) {
			assetHandler.ServeHTTP(w, req)
			return
		}
		router.ServeHTTP(w, req)
	})
}
