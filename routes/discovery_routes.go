package routes

import (
	"kindred_server/controllers"
	"kindred_server/services"

	"github.com/gorilla/mux"
)

// RegisterDiscoveryRoutes sets up routes for discovery under /api/discovery
func RegisterDiscoveryRoutes(r *mux.Router, discovery *services.DiscoveryService) {
	controller := controllers.NewDiscoveryController(discovery)

	discoveryRouter := r.PathPrefix("/api/discovery").Subrouter()
	discoveryRouter.HandleFunc("/browse", controller.HandleBrowse).Methods("POST")
}
