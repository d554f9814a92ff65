package main

import "net/http"

// rateLimit enforces the optional global limiter. Streaming endpoints are
// exempt so long-lived connections don't consume the budget.
func (a *app) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/events" || r.URL.Path == "/events/ws" {
			next.ServeHTTP(w, r)
			return
		}
		if !a.limiter.Allow() {
			w.Header().Set("Retry-After", "60")
			writeJSON(w, http.StatusTooManyRequests, errorBody{Detail: "Rate limit exceeded"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
