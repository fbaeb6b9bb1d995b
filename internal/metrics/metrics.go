package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Chat metrics
	ChatRequestsTotal   *prometheus.CounterVec
	ChatDurationSeconds prometheus.Histogram

	// Knowledge graph metrics
	GraphOpsTotal         *prometheus.CounterVec
	GraphUpsertsTotal     *prometheus.CounterVec
	CatalogFallbacksTotal *prometheus.CounterVec

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPDurationSeconds *prometheus.HistogramVec
}

// New creates a new Metrics instance with all metrics registered
func New(registry *prometheus.Registry) *Metrics {
	return &Metrics{
		ChatRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "coursebot_chat_requests_total",
				Help: "Total number of chat requests by classified intent",
			},
			[]string{"intent"},
		),

		ChatDurationSeconds: promauto.With(registry).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "coursebot_chat_duration_seconds",
				Help:    "Chat processing duration in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
			},
		),

		GraphOpsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "coursebot_graph_ops_total",
				Help: "Total knowledge graph operations by operation and status",
			},
			[]string{"op", "status"}, // op: health, upsert, summary, export, lookup; status: success, error
		),

		GraphUpsertsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "coursebot_graph_upserts_total",
				Help: "Total write-through course upserts by status",
			},
			[]string{"status"}, // status: success, error, skipped
		),

		CatalogFallbacksTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "coursebot_catalog_fallbacks_total",
				Help: "Total lookups answered from the catalog instead of the graph",
			},
			[]string{"reason"}, // reason: unhealthy, not_configured, empty_result
		),

		HTTPRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "coursebot_http_requests_total",
				Help: "Total HTTP requests by path and status code",
			},
			[]string{"path", "status"},
		),

		HTTPDurationSeconds: promauto.With(registry).NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "coursebot_http_duration_seconds",
				Help:    "HTTP request duration in seconds by path",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 2, 5},
			},
			[]string{"path"},
		),
	}
}

// RecordIntent increments the chat request counter for an intent.
func (m *Metrics) RecordIntent(intent string) {
	if m == nil {
		return
	}
	m.ChatRequestsTotal.WithLabelValues(intent).Inc()
}

// RecordDuration observes one chat processing duration in seconds.
func (m *Metrics) RecordDuration(seconds float64) {
	if m == nil {
		return
	}
	m.ChatDurationSeconds.Observe(seconds)
}

// RecordGraphOp increments the graph operation counter.
func (m *Metrics) RecordGraphOp(op, status string) {
	if m == nil {
		return
	}
	m.GraphOpsTotal.WithLabelValues(op, status).Inc()
}

// RecordUpsert increments the write-through upsert counter.
func (m *Metrics) RecordUpsert(status string) {
	if m == nil {
		return
	}
	m.GraphUpsertsTotal.WithLabelValues(status).Inc()
}

// RecordFallback increments the catalog fallback counter.
func (m *Metrics) RecordFallback(reason string) {
	if m == nil {
		return
	}
	m.CatalogFallbacksTotal.WithLabelValues(reason).Inc()
}
