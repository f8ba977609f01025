// Package monitoring provides Prometheus metrics for the HTTP surface and
// the tool execution layer.
package monitoring

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics. Each instance carries its own
// registry so independent instances never collide on registration.
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Tool execution metrics
	ToolCalls    *prometheus.CounterVec
	ToolDuration *prometheus.HistogramVec
	ToolErrors   *prometheus.CounterVec

	// System metrics
	Uptime    prometheus.Gauge
	startTime time.Time

	registry *prometheus.Registry

	// Snapshot for the JSON stats endpoint
	snapshot Snapshot
	mu       sync.RWMutex
}

// Snapshot holds current aggregate values for the JSON stats endpoint.
type Snapshot struct {
	TotalRequests int64   `json:"total_requests"`
	TotalErrors   int64   `json:"total_errors"`
	TotalDuration float64 `json:"-"`
	RequestCount  int64   `json:"-"`
}

// NewMetrics creates a new metrics collector with its own registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	m := &Metrics{
		startTime: time.Now(),
		registry:  registry,

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calc_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "calc_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),

		ToolCalls: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calc_tool_calls_total",
				Help: "Total number of tool executions",
			},
			[]string{"service", "tool", "status"},
		),
		ToolDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "calc_tool_duration_seconds",
				Help:    "Tool execution duration in seconds",
				Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
			},
			[]string{"service", "tool"},
		),
		ToolErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "calc_tool_errors_total",
				Help: "Total number of tool failures by error kind",
			},
			[]string{"service", "tool", "kind"},
		),

		Uptime: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "calc_uptime_seconds",
				Help: "Process uptime in seconds",
			},
		),
	}

	return m
}

// Handler returns an HTTP handler exposing this collector's registry in
// Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	m.Uptime.Set(time.Since(m.startTime).Seconds())
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// RecordHTTPRequest records an HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())

	m.mu.Lock()
	m.snapshot.TotalRequests++
	m.snapshot.TotalDuration += duration.Seconds()
	m.snapshot.RequestCount++
	if len(status) > 0 && (status[0] == '4' || status[0] == '5') {
		m.snapshot.TotalErrors++
	}
	m.mu.Unlock()
}

// RecordToolCall records a tool execution.
func (m *Metrics) RecordToolCall(service, tool, status string, duration time.Duration) {
	m.ToolCalls.WithLabelValues(service, tool, status).Inc()
	m.ToolDuration.WithLabelValues(service, tool).Observe(duration.Seconds())
}

// RecordToolError records a tool failure with its error kind discriminant.
func (m *Metrics) RecordToolError(service, tool, kind string) {
	m.ToolErrors.WithLabelValues(service, tool, kind).Inc()
}

// Stats returns a copy of the current aggregate snapshot.
func (m *Metrics) Stats() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshot
}

// AverageDuration returns the mean HTTP request duration in seconds.
func (m *Metrics) AverageDuration() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.snapshot.RequestCount == 0 {
		return 0
	}
	return m.snapshot.TotalDuration / float64(m.snapshot.RequestCount)
}
