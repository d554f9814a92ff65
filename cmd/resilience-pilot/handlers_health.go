package main

import "net/http"

// healthResponse is the payload for a passing health check.
type healthResponse struct {
	Status          string  `json:"status"`
	Uptime          float64 `json:"uptime"`
	UptimeFormatted string  `json:"uptime_formatted"`
	ChaosMode       bool    `json:"chaos_mode"`
}

// healthHandler reports liveness. While chaos mode is active every request
// takes a fresh probability draw, so a degraded service still answers some
// probes.
func (a *app) healthHandler(w http.ResponseWriter, r *http.Request) error {
	a.metrics.setUptime(a.uptime.elapsed().Seconds())

	if a.chaos.shouldFail() {
		a.metrics.recordChaos(chaosModeDegraded)
		a.publishChaosEvent(eventChaosInjected, chaosModeDegraded)
		return httpErrorf(http.StatusServiceUnavailable, "Service degraded (chaos mode active)")
	}

	enabled, _ := a.chaos.snapshot()
	writeJSON(w, http.StatusOK, healthResponse{
		Status:          "healthy",
		Uptime:          a.uptime.seconds(),
		UptimeFormatted: formatUptime(a.uptime.elapsed()),
		ChaosMode:       enabled,
	})
	return nil
}
