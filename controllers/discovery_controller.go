package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"kindred_server/models"
	"kindred_server/services"
)

const defaultPageSize = 20

// DiscoveryController handles browse requests
type DiscoveryController struct {
	Discovery *services.DiscoveryService
}

// NewDiscoveryController creates a new DiscoveryController instance
func NewDiscoveryController(discovery *services.DiscoveryService) *DiscoveryController {
	return &DiscoveryController{Discovery: discovery}
}

// HandleBrowse runs a filtered, ranked, paginated discovery query. Criteria
// come in the body; page and pageSize in the query string.
func (dc *DiscoveryController) HandleBrowse(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID   string                `json:"userId"`
		Criteria models.FilterCriteria `json:"criteria"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.UserID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	page := queryInt(r, "page", 1)
	pageSize := queryInt(r, "pageSize", defaultPageSize)

	result, err := dc.Discovery.Browse(r.Context(), request.UserID, request.Criteria, page, pageSize)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
