package controllers

import (
	"encoding/json"
	"net/http"

	"kindred_server/metrics"
	"kindred_server/services"
)

// ActionController handles like/pass actions
type ActionController struct {
	Registry *services.MatchRegistry
}

// NewActionController creates a new ActionController instance
func NewActionController(registry *services.MatchRegistry) *ActionController {
	return &ActionController{Registry: registry}
}

// HandleLike records a one-sided like and reports whether it completed a
// mutual match.
func (ac *ActionController) HandleLike(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID       string `json:"userId"`
		TargetUserID string `json:"targetUserId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.UserID == "" || request.TargetUserID == "" {
		http.Error(w, "userId and targetUserId are required", http.StatusBadRequest)
		return
	}

	result, err := ac.Registry.Like(r.Context(), request.UserID, request.TargetUserID)
	if err != nil {
		writeError(w, err)
		return
	}

	metrics.LikeRecorded(result.NewlyMutual)
	writeJSON(w, http.StatusOK, result)
}

// HandlePass deletes any record for the pair, whatever its state.
func (ac *ActionController) HandlePass(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID       string `json:"userId"`
		TargetUserID string `json:"targetUserId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if request.UserID == "" || request.TargetUserID == "" {
		http.Error(w, "userId and targetUserId are required", http.StatusBadRequest)
		return
	}

	if err := ac.Registry.Pass(r.Context(), request.UserID, request.TargetUserID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Pass recorded"})
}
