package routes

import (
	"kindred_server/controllers"
	"kindred_server/services"

	"github.com/gorilla/mux"
)

// RegisterPresenceRoutes sets up routes for presence lookup under /api/presence
func RegisterPresenceRoutes(r *mux.Router, presence services.PresenceTracker) {
	controller := controllers.NewPresenceController(presence)

	r.HandleFunc("/api/presence/{userId}", controller.HandleGetPresence).Methods("GET")
}
