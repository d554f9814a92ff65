package main

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
)

// chaosEnabledResponse confirms that degraded mode is active.
type chaosEnabledResponse struct {
	Status             string  `json:"status"`
	Mode               string  `json:"mode"`
	FailureProbability float64 `json:"failure_probability"`
	Message            string  `json:"message"`
}

// chaosDisabledResponse confirms that the service is back to healthy.
type chaosDisabledResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// chaosHandler drives the failure-injection state machine. mode selects the
// action; probability applies to degraded mode only and defaults to 1.0.
func (a *app) chaosHandler(w http.ResponseWriter, r *http.Request) error {
	q := r.URL.Query()

	mode := q.Get("mode")
	if mode == "" {
		mode = chaosModeImmediate
	}

	probability := 1.0
	if raw := q.Get("probability"); raw != "" {
		p, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(p) || math.IsInf(p, 0) {
			return httpErrorf(http.StatusBadRequest, "Invalid probability: %s", raw)
		}
		probability = p
	}

	switch mode {
	case chaosModeImmediate:
		a.metrics.recordChaos(chaosModeImmediate)
		a.publishChaosEvent(eventChaosInjected, chaosModeImmediate)
		a.log.Warn().Msg("immediate crash requested")
		return httpErrorf(http.StatusInternalServerError, "💥 Chaos injected! This is an intentional crash for testing.")

	case chaosModeDegraded:
		p := a.chaos.enableDegraded(probability)
		a.publishChaosEvent(eventChaosEnabled, chaosModeDegraded)
		a.log.Warn().Float64("probability", p).Msg("degraded mode enabled")
		writeJSON(w, http.StatusOK, chaosEnabledResponse{
			Status:             "chaos_enabled",
			Mode:               chaosModeDegraded,
			FailureProbability: p,
			Message:            fmt.Sprintf("Health endpoint will fail %.4g%% of the time", p*100),
		})
		return nil

	case chaosModeReset:
		a.chaos.reset()
		a.publishChaosEvent(eventChaosReset, chaosModeReset)
		a.log.Info().Msg("chaos state reset")
		writeJSON(w, http.StatusOK, chaosDisabledResponse{
			Status:  "chaos_disabled",
			Message: "Service restored to healthy state",
		})
		return nil

	default:
		return httpErrorf(http.StatusBadRequest, "Unknown mode: %s. Use 'immediate', 'degraded', or 'reset'", mode)
	}
}
