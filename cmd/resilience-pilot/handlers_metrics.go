package main

import "net/http"

// metricsHandler refreshes the uptime gauge and serves the exposition text.
func (a *app) metricsHandler() http.Handler {
	promHandler := a.metrics.handler()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a.metrics.setUptime(a.uptime.elapsed().Seconds())
		promHandler.ServeHTTP(w, r)
	})
}
