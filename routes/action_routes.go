package routes

import (
	"kindred_server/controllers"
	"kindred_server/services"

	"github.com/gorilla/mux"
)

// RegisterActionRoutes sets up routes for like/pass actions under /api/action
func RegisterActionRoutes(r *mux.Router, registry *services.MatchRegistry) {
	controller := controllers.NewActionController(registry)

	actionRouter := r.PathPrefix("/api/action").Subrouter()
	actionRouter.HandleFunc("/like", controller.HandleLike).Methods("POST")
	actionRouter.HandleFunc("/pass", controller.HandlePass).Methods("POST")
}
