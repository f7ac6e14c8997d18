package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"kindred_server/services"
)

// writeJSON encodes the payload with the proper content type.
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Println("Failed to encode response:", err)
	}
}

// writeError maps the service error taxonomy onto HTTP status codes.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidOperation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, services.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, services.ErrUnreachablePeer), errors.Is(err, services.ErrConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.Println("Internal error:", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
