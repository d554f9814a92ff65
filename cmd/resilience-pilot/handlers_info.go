package main

import (
	"net"
	"net/http"
	"runtime"
	"strings"
	"time"
)

// serviceEndpoints lists the primary routes advertised by the root endpoint.
type serviceEndpoints struct {
	Health  string `json:"health"`
	Metrics string `json:"metrics"`
	Chaos   string `json:"chaos"`
}

type rootResponse struct {
	Application string           `json:"application"`
	Version     string           `json:"version"`
	Endpoints   serviceEndpoints `json:"endpoints"`
}

// rootHandler describes the service and its primary endpoints.
func (a *app) rootHandler(w http.ResponseWriter, r *http.Request) error {
	writeJSON(w, http.StatusOK, rootResponse{
		Application: appName,
		Version:     version,
		Endpoints: serviceEndpoints{
			Health:  "/health",
			Metrics: "/metrics",
			Chaos:   "/simulate-crash",
		},
	})
	return nil
}

// infoHandler returns a diagnostic snapshot: request metadata, server build
// and runtime details, the current chaos state and the recent chaos events.
func (a *app) infoHandler(w http.ResponseWriter, r *http.Request) error {
	chaosEnabled, chaosProbability := a.chaos.snapshot()

	writeJSON(w, http.StatusOK, map[string]any{
		"timestamp":   time.Now(),
		"method":      r.Method,
		"path":        r.URL.Path,
		"query":       r.URL.Query(),
		"remote_addr": getClientIP(r),
		"user_agent":  r.UserAgent(),
		"protocol":    r.Proto,
		"tls":         r.TLS != nil,
		"request_id":  requestIDFrom(r.Context()),
		"server": map[string]any{
			"hostname":         a.cfg.Hostname,
			"application":      appName,
			"version":          version,
			"go_version":       runtime.Version(),
			"platform":         runtime.GOOS + "/" + runtime.GOARCH,
			"start_time":       a.uptime.start,
			"uptime":           a.uptime.seconds(),
			"uptime_formatted": formatUptime(a.uptime.elapsed()),
		},
		"chaos": map[string]any{
			"enabled":     chaosEnabled,
			"probability": chaosProbability,
		},
		"recent_events": a.events.recentEvents(),
	})
	return nil
}

func getClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
