package main

import (
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// app wires the service components together. Handlers and middleware hang
// off it, so tests can build isolated instances with fresh state.
type app struct {
	cfg     Config
	log     zerolog.Logger
	metrics *metrics
	chaos   *chaosState
	uptime  *uptimeTracker
	events  *eventBus
	limiter *rate.Limiter
}

// newApp assembles an app from configuration. Nothing global is touched;
// multiple instances can coexist in one process.
func newApp(cfg Config) *app {
	a := &app{
		cfg:     cfg,
		log:     newLogger(cfg),
		metrics: newMetrics(),
		chaos:   newChaosState(),
		uptime:  newUptimeTracker(time.Now()),
		events:  newEventBus(cfg.RecentEvents),
	}
	if cfg.RateLimitRPS > 0 && cfg.RateLimitBurst > 0 {
		a.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	}
	return a
}
