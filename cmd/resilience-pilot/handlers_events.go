package main

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

//go:embed html/*
var files embed.FS

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// heartbeat is the periodic snapshot pushed to stream subscribers between
// chaos events.
type heartbeat struct {
	Type            eventType `json:"type"`
	Timestamp       time.Time `json:"timestamp"`
	Uptime          float64   `json:"uptime"`
	UptimeFormatted string    `json:"uptime_formatted"`
	ChaosMode       bool      `json:"chaos_mode"`
	Probability     float64   `json:"probability,omitempty"`
}

func (a *app) currentHeartbeat() heartbeat {
	enabled, p := a.chaos.snapshot()
	hb := heartbeat{
		Type:            eventHeartbeat,
		Timestamp:       time.Now(),
		Uptime:          a.uptime.seconds(),
		UptimeFormatted: formatUptime(a.uptime.elapsed()),
		ChaosMode:       enabled,
	}
	if enabled {
		hb.Probability = p
	}
	return hb
}

func (a *app) heartbeatInterval() time.Duration {
	if a.cfg.EventHeartbeat > 0 {
		return a.cfg.EventHeartbeat
	}
	return 5 * time.Second
}

// sseHandler streams chaos events over Server-Sent Events, interleaved with
// periodic heartbeats.
func (a *app) sseHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	flusher, ok := w.(http.Flusher)
	if !ok {
		a.log.Error().Str("remote", r.RemoteAddr).Msg("streaming not supported")
		writeJSON(w, http.StatusInternalServerError, errorBody{Detail: "Streaming not supported"})
		return
	}

	sub := a.events.subscribe()
	defer a.events.unsubscribe(sub)

	a.log.Debug().Str("remote", r.RemoteAddr).Msg("sse connected")

	ticker := time.NewTicker(a.heartbeatInterval())
	defer ticker.Stop()

	writeFrame := func(v any) bool {
		data, err := json.Marshal(v)
		if err != nil {
			a.log.Error().Err(err).Msg("sse marshal failed")
			return false
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", data); err != nil {
			return false
		}
		flusher.Flush()
		return true
	}

	if !writeFrame(a.currentHeartbeat()) {
		return
	}

	for {
		select {
		case <-r.Context().Done():
			a.log.Debug().Str("remote", r.RemoteAddr).Msg("sse disconnected")
			return
		case ev, ok := <-sub:
			if !ok {
				return
			}
			if !writeFrame(ev) {
				return
			}
		case <-ticker.C:
			if !writeFrame(a.currentHeartbeat()) {
				return
			}
		}
	}
}

// websocketHandler streams the same events over a WebSocket connection.
func (a *app) websocketHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		a.log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	sub := a.events.subscribe()
	defer a.events.unsubscribe(sub)

	a.log.Debug().Str("remote", r.RemoteAddr).Msg("websocket connected")

	// Drain client frames so close is noticed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(a.heartbeatInterval())
	defer ticker.Stop()

	if err := conn.WriteJSON(a.currentHeartbeat()); err != nil {
		return
	}

	for {
		select {
		case <-done:
			return
		case <-r.Context().Done():
			return
		case ev, ok := <-sub:
			if !ok {
				return
			}
			if err := conn.WriteJSON(ev); err != nil {
				return
			}
		case <-ticker.C:
			if err := conn.WriteJSON(a.currentHeartbeat()); err != nil {
				return
			}
		}
	}
}

// dashboardHandler serves the embedded event viewer page.
func (a *app) dashboardHandler(w http.ResponseWriter, r *http.Request) {
	tmpl, err := template.ParseFS(files, "html/events.html")
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorBody{Detail: err.Error()})
		return
	}
	w.Header().Set("Content-Type", "text/html")
	if err := tmpl.Execute(w, struct{ Host string }{Host: r.Host}); err != nil {
		a.log.Error().Err(err).Msg("dashboard render failed")
	}
}
