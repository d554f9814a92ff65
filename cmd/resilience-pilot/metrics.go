package main

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// latencyBuckets are the histogram bounds for request duration, in seconds.
var latencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0}

// metrics holds the Prometheus collectors for the service. Each app owns its
// own registry so tests can build isolated instances.
type metrics struct {
	registry       *prometheus.Registry
	requestTotal   *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	uptime         prometheus.Gauge
	chaosInjected  *prometheus.CounterVec
}

func newMetrics() *metrics {
	m := &metrics{
		registry: prometheus.NewRegistry(),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		requestLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency",
				Buckets: latencyBuckets,
			},
			[]string{"method", "endpoint"},
		),
		uptime: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "app_uptime_seconds",
				Help: "Application uptime in seconds",
			},
		),
		chaosInjected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chaos_injections_total",
				Help: "Total number of chaos-induced failures",
			},
			[]string{"mode"},
		),
	}
	m.registry.MustRegister(m.requestTotal, m.requestLatency, m.uptime, m.chaosInjected)
	return m
}

// recordRequest counts one completed request.
func (m *metrics) recordRequest(method, endpoint string, status int) {
	m.requestTotal.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
}

// observeLatency records one request duration.
func (m *metrics) observeLatency(method, endpoint string, seconds float64) {
	m.requestLatency.WithLabelValues(method, endpoint).Observe(seconds)
}

// setUptime refreshes the uptime gauge.
func (m *metrics) setUptime(seconds float64) {
	m.uptime.Set(seconds)
}

// recordChaos counts one injected failure for the given chaos mode.
func (m *metrics) recordChaos(mode string) {
	m.chaosInjected.WithLabelValues(mode).Inc()
}

// handler serves the registry in the Prometheus text exposition format.
func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
