package controllers

import (
	"net/http"

	"kindred_server/services"

	"github.com/gorilla/mux"
)

// PresenceController exposes per-user reachability
type PresenceController struct {
	Presence services.PresenceTracker
}

// NewPresenceController creates a new PresenceController instance
func NewPresenceController(presence services.PresenceTracker) *PresenceController {
	return &PresenceController{Presence: presence}
}

// HandleGetPresence returns the reachability snapshot for a user. Users that
// have never connected yield 404.
func (pc *PresenceController) HandleGetPresence(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	state, ok := pc.Presence.State(userID)
	if !ok {
		http.Error(w, "user has never connected", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, state)
}
