package main

import (
	"testing"
	"time"
)

// newTestApp builds an isolated app with quiet logs and fast heartbeats.
// Every test gets its own registry and chaos state.
func newTestApp(t *testing.T) *app {
	t.Helper()
	cfg := Config{
		Port:            8080,
		BindAddr:        "127.0.0.1",
		LogLevel:        "error",
		LogRequests:     false,
		EventHeartbeat:  50 * time.Millisecond,
		RecentEvents:    10,
		ShutdownTimeout: time.Second,
		Hostname:        "test-host",
	}
	a := newApp(cfg)
	t.Cleanup(a.events.close)
	return a
}

// latencyObservations returns the histogram sample count recorded for the
// given method and endpoint.
func latencyObservations(t *testing.T, m *metrics, method, endpoint string) uint64 {
	t.Helper()
	mfs, err := m.registry.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, mf := range mfs {
		if mf.GetName() != "http_request_duration_seconds" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			labels := make(map[string]string, len(metric.GetLabel()))
			for _, lp := range metric.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["method"] == method && labels["endpoint"] == endpoint {
				return metric.GetHistogram().GetSampleCount()
			}
		}
	}
	return 0
}
