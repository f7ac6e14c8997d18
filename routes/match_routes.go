package routes

import (
	"kindred_server/controllers"
	"kindred_server/services"

	"github.com/gorilla/mux"
)

// RegisterMatchRoutes sets up routes for match listing under /api/matches
func RegisterMatchRoutes(r *mux.Router, registry *services.MatchRegistry, directory services.UserDirectory) {
	controller := controllers.NewMatchController(registry, directory)

	r.HandleFunc("/api/matches", controller.HandleGetMatches).Methods("GET")
}
