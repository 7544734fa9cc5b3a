package page

import (
	"bytes"
	"errors"
	"fmt"
	"html"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	g "maragu.dev/gomponents"

	"github.com/3-lines-studio/infraguide/internal/cache"
	"github.com/3-lines-studio/infraguide/internal/core"
	"github.com/3-lines-studio/infraguide/internal/metrics"
)

// Document is what a view produces for one request. Variant distinguishes
// renderings of the same page in the cache, e.g. the selected tab.
type Document struct {
	Title       string
	Description string
	Variant     string
	Body        g.Node
}

type View func(*http.Request) (Document, error)

type Assets struct {
	Stylesheets []string
	Scripts     []string
}

type Options struct {
	Name    string
	Assets  Assets
	Cache   *cache.Cache
	Metrics *metrics.Metrics
	Logger  *slog.Logger
	IsDev   bool
}

type Handler struct {
	view    View
	name    string
	assets  Assets
	cache   *cache.Cache
	metrics *metrics.Metrics
	logger  *slog.Logger
	isDev   bool
}

func NewHandler(view View, opts Options) *Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		view:    view,
		name:    opts.Name,
		assets:  opts.Assets,
		cache:   opts.Cache,
		metrics: opts.Metrics,
		logger:  logger.With("page", opts.Name),
		isDev:   opts.IsDev,
	}
}

var errNilView = errors.New("page has no view")

// Render produces the full HTML document for req, from the cache when
// possible.
func (h *Handler) Render(req *http.Request) ([]byte, error) {
	if h.view == nil {
		return nil, errNilView
	}

	doc, err := h.view(req)
	if err != nil {
		return nil, err
	}

	key := h.name + "|" + doc.Variant
	if body, ok := h.cache.Get(key); ok {
		if h.metrics != nil {
			h.metrics.CacheHits.WithLabelValues(h.name).Inc()
		}
		return body, nil
	}

	start := time.Now()
	body, err := h.renderDocument(doc)
	if err != nil {
		return nil, err
	}
	if h.metrics != nil {
		h.metrics.Renders.WithLabelValues(h.name).Inc()
		h.metrics.RenderTime.WithLabelValues(h.name).Observe(time.Since(start).Seconds())
	}

	h.cache.Set(key, body, 0)
	return body, nil
}

func (h *Handler) renderDocument(doc Document) ([]byte, error) {
	var body strings.Builder
	if doc.Body != nil {
		if err := doc.Body.Render(&body); err != nil {
			return nil, fmt.Errorf("render %s body: %w", h.name, err)
		}
	}

	return RenderHTMLShell(Shell{
		Title:       doc.Title,
		Description: doc.Description,
		Body:        template.HTML(body.String()),
		Stylesheets: h.assets.Stylesheets,
		Scripts:     h.assets.Scripts,
	})
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	body, err := h.Render(req)
	if err != nil {
		if h.metrics != nil {
			h.metrics.RenderErrors.WithLabelValues(h.name).Inc()
		}
		h.logger.Error("render failed", "path", req.URL.Path, "error", err)
		h.serveError(w, err)
		return
	}

	etag := core.ETag(body)
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")

	if matchesETag(req.Header.Get("If-None-Match"), etag) {
		if h.metrics != nil {
			h.metrics.NotModified.WithLabelValues(h.name).Inc()
		}
		w.WriteHeader(http.StatusNotModified)
		return
	}

	serveHTML(w, body)
}

func matchesETag(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		candidate = strings.TrimPrefix(candidate, "W/")
		if candidate == "*" || candidate == etag {
			return true
		}
	}
	return false
}

func serveHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

type errorData struct {
	Heading string
	Message string
	IsDev   bool
}

func (h *Handler) serveError(w http.ResponseWriter, err error) {
	data := errorData{
		Heading: "Internal Server Error",
		Message: err.Error(),
		IsDev:   h.isDev,
	}

	var buf bytes.Buffer
	if err := ErrorTemplate.Execute(&buf, data); err != nil {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<!doctype html><html><body><pre>" + html.EscapeString(data.Message) + "</pre></body></html>"))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write(buf.Bytes())
}
