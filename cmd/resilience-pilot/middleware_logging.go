package main

import (
	"net/http"
	"time"
)

// requestLog emits one access log line per request when enabled.
func (a *app) requestLog(next http.Handler) http.Handler {
	if !a.cfg.LogRequests {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(rw, r)

		a.log.Info().
			Str("request_id", requestIDFrom(r.Context())).
			Str("remote", r.RemoteAddr).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rw.statusCode).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}
