// Package metrics defines the Prometheus collectors for page serving.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	Renders      *prometheus.CounterVec
	CacheHits    *prometheus.CounterVec
	RenderTime   *prometheus.HistogramVec
	NotModified  *prometheus.CounterVec
	RenderErrors *prometheus.CounterVec
}

// New creates the collectors and registers them on reg. A nil reg leaves
// them unregistered, which tests use.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "infraguide",
			Name:      "page_renders_total",
			Help:      "Pages rendered, by page.",
		}, []string{"page"}),
		CacheHits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "infraguide",
			Name:      "page_cache_hits_total",
			Help:      "Pages served from the render cache, by page.",
		}, []string{"page"}),
		RenderTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "infraguide",
			Name:      "page_render_seconds",
			Help:      "Time spent rendering a page.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
		}, []string{"page"}),
		NotModified: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "infraguide",
			Name:      "page_not_modified_total",
			Help:      "Conditional requests answered with 304, by page.",
		}, []string{"page"}),
		RenderErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "infraguide",
			Name:      "page_render_errors_total",
			Help:      "Page renders that failed, by page.",
		}, []string{"page"}),
	}

	if reg != nil {
		reg.MustRegister(m.Renders, m.CacheHits, m.RenderTime, m.NotModified, m.RenderErrors)
	}
	return m
}
