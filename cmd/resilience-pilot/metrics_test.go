package main

import (
	"net/http"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordRequestCountsByLabels(t *testing.T) {
	m := newMetrics()
	m.recordRequest(http.MethodGet, "/health", 200)
	m.recordRequest(http.MethodGet, "/health", 200)
	m.recordRequest(http.MethodGet, "/health", 503)
	m.recordRequest(http.MethodPost, "/simulate-crash", 500)

	if got := testutil.ToFloat64(m.requestTotal.WithLabelValues("GET", "/health", "200")); got != 2 {
		t.Errorf("GET /health 200 count = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.requestTotal.WithLabelValues("GET", "/health", "503")); got != 1 {
		t.Errorf("GET /health 503 count = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.requestTotal.WithLabelValues("POST", "/simulate-crash", "500")); got != 1 {
		t.Errorf("POST /simulate-crash 500 count = %v, want 1", got)
	}
}

func TestUptimeGaugeTracksLatestValue(t *testing.T) {
	m := newMetrics()
	m.setUptime(42.5)
	if got := testutil.ToFloat64(m.uptime); got != 42.5 {
		t.Errorf("uptime gauge = %v, want 42.5", got)
	}
	m.setUptime(43.25)
	if got := testutil.ToFloat64(m.uptime); got != 43.25 {
		t.Errorf("uptime gauge = %v, want 43.25", got)
	}
}

func TestChaosInjectionCounter(t *testing.T) {
	m := newMetrics()
	m.recordChaos(chaosModeImmediate)
	m.recordChaos(chaosModeDegraded)
	m.recordChaos(chaosModeDegraded)

	if got := testutil.ToFloat64(m.chaosInjected.WithLabelValues("immediate")); got != 1 {
		t.Errorf("immediate injections = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.chaosInjected.WithLabelValues("degraded")); got != 2 {
		t.Errorf("degraded injections = %v, want 2", got)
	}
}

func TestCounterExposition(t *testing.T) {
	m := newMetrics()
	m.recordRequest(http.MethodGet, "/", 200)

	want := strings.NewReader(`
# HELP http_requests_total Total HTTP requests
# TYPE http_requests_total counter
http_requests_total{endpoint="/",method="GET",status="200"} 1
`)
	if err := testutil.GatherAndCompare(m.registry, want, "http_requests_total"); err != nil {
		t.Errorf("unexpected exposition: %v", err)
	}
}

func TestLatencyHistogramBuckets(t *testing.T) {
	m := newMetrics()
	m.observeLatency(http.MethodGet, "/health", 0.007)

	mfs, err := m.registry.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, mf := range mfs {
		if mf.GetName() != "http_request_duration_seconds" {
			continue
		}
		buckets := mf.GetMetric()[0].GetHistogram().GetBucket()
		if len(buckets) != len(latencyBuckets) {
			t.Fatalf("bucket count = %d, want %d", len(buckets), len(latencyBuckets))
		}
		if got := buckets[0].GetUpperBound(); got != 0.005 {
			t.Errorf("first bucket bound = %v, want 0.005", got)
		}
		if got := buckets[len(buckets)-1].GetUpperBound(); got != 5.0 {
			t.Errorf("last bucket bound = %v, want 5.0", got)
		}
		// 0.007 is above the 5ms bound and within the 10ms one.
		if got := buckets[0].GetCumulativeCount(); got != 0 {
			t.Errorf("bucket[0.005] count = %d, want 0", got)
		}
		if got := buckets[1].GetCumulativeCount(); got != 1 {
			t.Errorf("bucket[0.01] count = %d, want 1", got)
		}
		return
	}
	t.Fatal("http_request_duration_seconds not gathered")
}

func TestRegistriesAreIsolated(t *testing.T) {
	m1 := newMetrics()
	m2 := newMetrics()
	m1.recordRequest(http.MethodGet, "/health", 200)

	if got := testutil.ToFloat64(m2.requestTotal.WithLabelValues("GET", "/health", "200")); got != 0 {
		t.Errorf("second registry saw %v requests, want 0", got)
	}
}
