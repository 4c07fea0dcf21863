package httpx

import (
	"encoding/json"
	"net/http"
)

// Envelope is the body of every API response. Code mirrors an HTTP status but
// is not always equal to the transport status: business failures such as bad
// credentials travel as HTTP 200 with code 500.
type Envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// WriteEnvelope writes env with the given transport status.
func WriteEnvelope(w http.ResponseWriter, status int, env Envelope) {
	WriteJSON(w, status, env)
}

// WriteOK writes a successful envelope.
func WriteOK(w http.ResponseWriter, message string, data any) {
	WriteEnvelope(w, http.StatusOK, Envelope{Code: http.StatusOK, Message: message, Data: data})
}

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type header and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// Token and profile responses must never be cached.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}
