package middleware

import (
	"encoding/json"
	"net/http"
)

// problem mirrors the error body written by the REST handlers so clients see
// one shape whether a request fails in middleware or in a handler.
type problem struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func writeProblem(w http.ResponseWriter, status int, kind, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(problem{Kind: kind, Message: message})
}
