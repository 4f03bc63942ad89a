package middleware

import (
	"encoding/json"
	"net/http"
)

// failure mirrors the API error envelope so middleware rejections look like handler errors.
type failure struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func writeFailure(w http.ResponseWriter, status int, kind, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(failure{Message: message, Error: kind}) //nolint:errcheck
}
