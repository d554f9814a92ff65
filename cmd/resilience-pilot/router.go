package main

import (
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
)

// setupRoutes configures all HTTP routes and the router-scoped middleware.
func (a *app) setupRoutes() *mux.Router {
	router := mux.NewRouter()

	if a.cfg.EnableCORS {
		router.Use(a.cors)
	}
	if a.limiter != nil {
		router.Use(a.rateLimit)
	}

	router.HandleFunc("/", a.handle(a.rootHandler)).Methods("GET")
	router.HandleFunc("/health", a.handle(a.healthHandler)).Methods("GET")
	router.Handle("/metrics", a.metricsHandler()).Methods("GET")
	router.HandleFunc("/simulate-crash", a.handle(a.chaosHandler)).Methods("POST")

	// Diagnostics and live event streams
	router.HandleFunc("/info", a.handle(a.infoHandler)).Methods("GET")
	router.HandleFunc("/events", a.sseHandler).Methods("GET")
	router.HandleFunc("/events/ws", a.websocketHandler).Methods("GET")
	router.HandleFunc("/dashboard", a.dashboardHandler).Methods("GET")

	router.NotFoundHandler = http.HandlerFunc(notFoundHandler)
	router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowedHandler)

	return router
}

// handler assembles the full middleware chain around the router. The
// instrumentation wrapper sits outermost so every request is measured,
// including ones no route matches. The result is wrapped with h2c to support
// HTTP/2 over cleartext.
func (a *app) handler() http.Handler {
	var h http.Handler = a.setupRoutes()
	h = a.requestLog(h)
	h = requestID(h)
	h = a.instrument(h)
	return h2c.NewHandler(h, &http2.Server{})
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, errorBody{Detail: "Not Found"})
}

func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusMethodNotAllowed, errorBody{Detail: "Method Not Allowed"})
}
