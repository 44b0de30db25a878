// Package metrics exposes the service's Prometheus metrics: HTTP traffic,
// packaging log classifications and background image resolution.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Image job results.
const (
	ImageResolved = "resolved"
	ImageNotFound = "not_found"
	ImageFailed   = "failed"
	ImageDropped  = "dropped"
)

// Metrics holds every collector of the service. A nil *Metrics is valid and
// records nothing.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	logsClassifiedTotal *prometheus.CounterVec
	imageJobsTotal      *prometheus.CounterVec
	imageQueueDepth     prometheus.Gauge
}

// NewMetrics creates the collectors and registers them, together with the
// Go runtime and process collectors, on registry.
func NewMetrics(registry *prometheus.Registry) (*Metrics, error) {
	m := &Metrics{registry: registry}
	m.initMetrics()

	if err := registry.Register(m); err != nil {
		return nil, err
	}
	if err := registry.Register(collectors.NewGoCollector()); err != nil {
		return nil, err
	}
	if err := registry.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Metrics) initMetrics() {
	m.httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "waste_tracker_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	m.httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "waste_tracker_http_request_duration_seconds",
			Help:    "Time taken to serve HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	m.logsClassifiedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "waste_tracker_logs_classified_total",
			Help: "Packaging logs stored, by switch type",
		},
		[]string{"switch_type"},
	)

	m.imageJobsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "waste_tracker_image_jobs_total",
			Help: "Image resolution jobs, by result",
		},
		[]string{"result"},
	)

	m.imageQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "waste_tracker_image_queue_depth",
			Help: "Image resolution jobs waiting in the queue",
		},
	)
}

func (m *Metrics) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.logsClassifiedTotal,
		m.imageJobsTotal,
		m.imageQueueDepth,
	}
}

// Describe implements prometheus.Collector.
func (m *Metrics) Describe(ch chan<- *prometheus.Desc) {
	for _, c := range m.collectors() {
		c.Describe(ch)
	}
}

// Collect implements prometheus.Collector.
func (m *Metrics) Collect(ch chan<- prometheus.Metric) {
	for _, c := range m.collectors() {
		c.Collect(ch)
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) RecordHTTPRequest(method, route string, statusCode int, seconds float64) {
	if m == nil {
		return
	}
	m.httpRequestsTotal.WithLabelValues(method, route, strconv.Itoa(statusCode)).Inc()
	m.httpRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

func (m *Metrics) RecordLogClassified(switchType string) {
	if m == nil {
		return
	}
	m.logsClassifiedTotal.WithLabelValues(switchType).Inc()
}

func (m *Metrics) RecordImageJob(result string) {
	if m == nil {
		return
	}
	m.imageJobsTotal.WithLabelValues(result).Inc()
}

func (m *Metrics) SetImageQueueDepth(depth int) {
	if m == nil {
		return
	}
	m.imageQueueDepth.Set(float64(depth))
}
