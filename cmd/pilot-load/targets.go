package main

import (
	"fmt"
	"net/http"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

// targeterFor builds the request generator for the configured scenario.
// "health" hammers the health endpoint, "root" the info endpoint, and
// "mixed" rotates across root, health and metrics.
func targeterFor(cfg Config) (vegeta.Targeter, error) {
	switch cfg.Scenario {
	case "health":
		return vegeta.NewStaticTargeter(vegeta.Target{
			Method: http.MethodGet,
			URL:    cfg.TargetURL + "/health",
		}), nil
	case "root":
		return vegeta.NewStaticTargeter(vegeta.Target{
			Method: http.MethodGet,
			URL:    cfg.TargetURL + "/",
		}), nil
	case "mixed":
		return vegeta.NewStaticTargeter(
			vegeta.Target{Method: http.MethodGet, URL: cfg.TargetURL + "/"},
			vegeta.Target{Method: http.MethodGet, URL: cfg.TargetURL + "/health"},
			vegeta.Target{Method: http.MethodGet, URL: cfg.TargetURL + "/metrics"},
		), nil
	default:
		return nil, fmt.Errorf("unknown scenario: %s", cfg.Scenario)
	}
}
