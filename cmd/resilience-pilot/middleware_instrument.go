package main

import (
	"net/http"
	"time"
)

// instrument records one request count and one latency observation per
// request, on every exit path: normal return, fault response, or panic.
// Panics are recorded as 500 and re-raised. It wraps the whole router, so
// unmatched routes are measured too.
func (a *app) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		defer func() {
			p := recover()
			status := rw.statusCode
			if p != nil {
				status = http.StatusInternalServerError
			}
			a.metrics.recordRequest(r.Method, r.URL.Path, status)
			a.metrics.observeLatency(r.Method, r.URL.Path, time.Since(start).Seconds())
			if p != nil {
				panic(p)
			}
		}()

		next.ServeHTTP(rw, r)
	})
}
