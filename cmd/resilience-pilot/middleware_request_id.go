package main

import (
	"context"
	crand "crypto/rand"
	"encoding/hex"
	"net/http"
)

type ctxKey int

const requestIDKey ctxKey = iota

// requestID attaches an identifier to the request context for log
// correlation. Incoming X-Request-ID values are reused; the id is not echoed
// on the response.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = generateRequestID()
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

// requestIDFrom returns the identifier stored in ctx, or "" if none is set.
func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

func generateRequestID() string {
	b := make([]byte, 8)
	if _, err := crand.Read(b); err != nil {
		panic("failed to generate request ID: " + err.Error())
	}
	return hex.EncodeToString(b)
}
