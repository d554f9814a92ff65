package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// httpError is a fault a handler wants translated into an HTTP response.
// The detail text becomes the "detail" field of the response body.
type httpError struct {
	status int
	detail string
}

func (e *httpError) Error() string {
	return fmt.Sprintf("%d: %s", e.status, e.detail)
}

// httpErrorf builds an httpError with a formatted detail message.
func httpErrorf(status int, format string, args ...any) *httpError {
	return &httpError{status: status, detail: fmt.Sprintf(format, args...)}
}

// errorBody is the JSON envelope for all fault responses.
type errorBody struct {
	Detail string `json:"detail"`
}

// apiHandler reports faults by returning an error instead of writing the
// response itself.
type apiHandler func(w http.ResponseWriter, r *http.Request) error

// handle adapts an apiHandler to http.HandlerFunc, translating returned
// errors into the detail envelope. Errors that are not httpError values are
// logged and masked as a 500.
func (a *app) handle(fn apiHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := fn(w, r)
		if err == nil {
			return
		}
		var herr *httpError
		if !errors.As(err, &herr) {
			a.log.Error().Err(err).Str("path", r.URL.Path).Msg("handler failed")
			herr = &httpError{status: http.StatusInternalServerError, detail: "Internal Server Error"}
		}
		writeJSON(w, herr.status, errorBody{Detail: herr.detail})
	}
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
