// ABOUTME: Response writing helpers shared by API handlers
// ABOUTME: Centralizes JSON encoding and error body formatting

package handlers

import (
	"encoding/json"
	"net/http"

	"linkpreview-api/api/dto/responses"
)

// writeJSON writes v as a JSON response with the given status
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a client-facing error body
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, responses.ErrorResponse{Error: message})
}
