// Package metrics exposes the catalog's Prometheus collectors.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/stpnv0/EventCatalog/internal/domain"
)

const namespace = "event_catalog"

type Metrics struct {
	registry *prometheus.Registry

	backendDuration *prometheus.HistogramVec
	backendErrors   *prometheus.CounterVec
	httpRequests    *prometheus.CounterVec
	wsClients       prometheus.Gauge
	eventsByStatus  *prometheus.GaugeVec
	eventsByCat     *prometheus.GaugeVec
}

// New creates the collectors on a dedicated registry together with the Go
// runtime and process collectors.
func New() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.backendDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "backend_call_duration_seconds",
		Help:      "Duration of event backend calls",
		Buckets:   prometheus.DefBuckets,
	}, []string{"op"})
	m.backendErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "backend_call_errors_total",
		Help:      "Number of failed event backend calls",
	}, []string{"op"})
	m.httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Number of HTTP requests by route and status",
	}, []string{"method", "route", "status"})
	m.wsClients = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "websocket_clients",
		Help:      "Number of connected websocket clients",
	})
	m.eventsByStatus = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "events",
		Help:      "Number of loaded events by status",
	}, []string{"status"})
	m.eventsByCat = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "events_by_category",
		Help:      "Number of loaded events by category",
	}, []string{"category"})

	m.registry.MustRegister(
		m.backendDuration, m.backendErrors, m.httpRequests,
		m.wsClients, m.eventsByStatus, m.eventsByCat,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

func (m *Metrics) ObserveBackendCall(op string, elapsed time.Duration, err error) {
	m.backendDuration.WithLabelValues(op).Observe(elapsed.Seconds())
	if err != nil {
		m.backendErrors.WithLabelValues(op).Inc()
	}
}

func (m *Metrics) ObserveRequest(method, route string, status int) {
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
}

func (m *Metrics) ClientConnected()    { m.wsClients.Inc() }
func (m *Metrics) ClientDisconnected() { m.wsClients.Dec() }

// ObserveCounts mirrors the store's aggregate counts.
func (m *Metrics) ObserveCounts(counts domain.EventCounts) {
	for status, n := range counts.ByStatus {
		m.eventsByStatus.WithLabelValues(string(status)).Set(float64(n))
	}
	for category, n := range counts.ByCategory {
		m.eventsByCat.WithLabelValues(string(category)).Set(float64(n))
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
