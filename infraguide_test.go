package infraguide

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/3-lines-studio/infraguide/internal/config"
)

func newTestApp(t *testing.T, mutate ...func(*config.Config)) *App {
	t.Helper()

	cfg := config.Default()
	for _, m := range mutate {
		m(&cfg)
	}

	routes, err := DefaultRoutes(cfg.Site)
	if err != nil {
		t.Fatalf("DefaultRoutes() error = %v", err)
	}
	app, err := New(cfg, nil, routes...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = app.Stop() })
	return app
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func TestHandlerServesPages(t *testing.T) {
	app := newTestApp(t)
	h := app.Handler()

	tests := []struct {
		name     string
		target   string
		contains []string
	}{
		{
			name:     "landing",
			target:   "/",
			contains: []string{"Multi-Region Infrastructure", "Global Edge Network", `href="/deployment-guide"`},
		},
		{
			name:     "guide",
			target:   "/deployment-guide",
			contains: []string{"Multi-Region Deployment Guide", "Terraform CLI (v1.0+)", `data-default="prerequisites"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := get(t, h, tt.target)
			if rr.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rr.Code)
			}
			if ct := rr.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
				t.Errorf("Content-Type = %q", ct)
			}
			body := rr.Body.String()
			for _, want := range tt.contains {
				if !strings.Contains(body, want) {
					t.Errorf("body missing %q", want)
				}
			}
		})
	}
}

func TestLandingHasFourCards(t *testing.T) {
	app := newTestApp(t)
	body := get(t, app.Handler(), "/").Body.String()

	if got := strings.Count(body, "data-feature="); got != 4 {
		t.Errorf("feature cards = %d, want 4", got)
	}
}

func TestGuideTabQuery(t *testing.T) {
	app := newTestApp(t)
	h := app.Handler()

	tests := []struct {
		query string
		want  string
	}{
		{"", "prerequisites"},
		{"?tab=cicd", "cicd"},
		{"?tab=VERCEL", "vercel"},
		{"?tab=nope", "prerequisites"},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			body := get(t, h, "/deployment-guide"+tt.query).Body.String()
			want := `id="tab-panel-` + tt.want + `"`
			idx := strings.Index(body, want)
			if idx < 0 {
				t.Fatalf("panel %s not found", tt.want)
			}
			end := strings.Index(body[idx:], ">")
			if strings.Contains(body[idx:idx+end], "hidden") {
				t.Errorf("panel %s is hidden, want visible", tt.want)
			}
			if got := strings.Count(body, `role="tabpanel"`); got != 4 {
				t.Errorf("panels = %d, want 4", got)
			}
		})
	}
}

func TestUnknownPathIsNotFound(t *testing.T) {
	app := newTestApp(t)
	if rr := get(t, app.Handler(), "/missing"); rr.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rr.Code)
	}
}

func TestHandlerServesAssets(t *testing.T) {
	app := newTestApp(t)
	h := app.Handler()

	for _, name := range []string{"app.css", "highlight.css", "tabs.js"} {
		rr := get(t, h, "/dist/"+name)
		if rr.Code != http.StatusOK {
			t.Errorf("%s: status = %d, want 200", name, rr.Code)
		}
	}

	if rr := get(t, h, "/dist/missing.js"); rr.Code != http.StatusNotFound {
		t.Errorf("missing asset status = %d, want 404", rr.Code)
	}
}

func TestPageRejectsPost(t *testing.T) {
	app := newTestApp(t)

	rr := httptest.NewRecorder()
	app.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rr.Code)
	}
}

func TestPageETag(t *testing.T) {
	app := newTestApp(t)
	h := app.Handler()

	first := get(t, h, "/deployment-guide")
	etag := first.Header().Get("ETag")
	if etag == "" {
		t.Fatal("missing ETag")
	}

	req := httptest.NewRequest(http.MethodGet, "/deployment-guide", nil)
	req.Header.Set("If-None-Match", etag)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotModified {
		t.Errorf("status = %d, want 304", rr.Code)
	}
}

func TestWrapWithChi(t *testing.T) {
	app := newTestApp(t)
	r := chi.NewRouter()
	h := app.Wrap(r)

	if rr := get(t, h, "/"); rr.Code != http.StatusOK {
		t.Errorf("/ status = %d", rr.Code)
	}
	if rr := get(t, h, "/deployment-guide?tab=terraform"); rr.Code != http.StatusOK {
		t.Errorf("guide status = %d", rr.Code)
	}
	if rr := get(t, h, "/dist/tabs.js"); rr.Code != http.StatusOK {
		t.Errorf("asset status = %d", rr.Code)
	}
}

func TestWrapNilRouterPanics(t *testing.T) {
	app := newTestApp(t)
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	app.Wrap(nil)
}

func TestCustomGuidePath(t *testing.T) {
	app := newTestApp(t, func(c *config.Config) { c.Site.GuidePath = "/docs/deploy" })
	h := app.Handler()

	if rr := get(t, h, "/docs/deploy"); rr.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rr.Code)
	}
	if body := get(t, h, "/").Body.String(); !strings.Contains(body, `href="/docs/deploy"`) {
		t.Error("landing link does not point at the configured guide path")
	}
}

func TestNewValidatesRoutes(t *testing.T) {
	view := func(*http.Request) (Document, error) { return Document{}, nil }

	tests := []struct {
		name   string
		routes []Route
	}{
		{"no routes", nil},
		{"relative pattern", []Route{Page("about", "about", view)}},
		{"wildcard", []Route{Page("/docs/*", "docs", view)}},
		{"missing name", []Route{Page("/", "", view)}},
		{"missing view", []Route{Page("/", "home", nil)}},
		{"duplicate", []Route{Page("/a", "a", view), Page("/a/", "b", view)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(config.Default(), nil, tt.routes...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestViewErrorServesErrorPage(t *testing.T) {
	failing := Page("/", "broken", func(*http.Request) (Document, error) {
		return Document{}, errors.New("loader exploded")
	})

	tests := []struct {
		name        string
		dev         bool
		wantMessage bool
	}{
		{"production hides message", false, false},
		{"dev shows message", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.Dev = tt.dev
			app, err := New(cfg, nil, failing)
			if err != nil {
				t.Fatal(err)
			}
			defer app.Stop()

			rr := get(t, app.Handler(), "/")
			if rr.Code != http.StatusInternalServerError {
				t.Fatalf("status = %d, want 500", rr.Code)
			}
			if got := strings.Contains(rr.Body.String(), "loader exploded"); got != tt.wantMessage {
				t.Errorf("message shown = %v, want %v", got, tt.wantMessage)
			}
		})
	}
}

func TestRegistryFollowsMetricsToggle(t *testing.T) {
	if app := newTestApp(t); app.Registry() == nil {
		t.Error("Registry() = nil with metrics enabled")
	}
	off := newTestApp(t, func(c *config.Config) { c.Metrics.Enabled = false })
	if off.Registry() != nil {
		t.Error("Registry() != nil with metrics disabled")
	}
}

func TestRoutesReturnsCopy(t *testing.T) {
	app := newTestApp(t)
	routes := app.Routes()
	if len(routes) != 2 {
		t.Fatalf("len(Routes()) = %d, want 2", len(routes))
	}
	routes[0].Name = "changed"
	if app.Routes()[0].Name != HomeRoute {
		t.Error("Routes() exposed internal slice")
	}
}
