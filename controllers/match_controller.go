package controllers

import (
	"errors"
	"math"
	"net/http"

	"kindred_server/models"
	"kindred_server/services"
	"kindred_server/utils"
)

// MatchController serves a user's mutual matches
type MatchController struct {
	Registry  *services.MatchRegistry
	Directory services.UserDirectory
}

// NewMatchController creates a new MatchController instance
func NewMatchController(registry *services.MatchRegistry, directory services.UserDirectory) *MatchController {
	return &MatchController{Registry: registry, Directory: directory}
}

// matchView is a mutual match enriched with the counterpart's profile.
type matchView struct {
	Record      models.MatchRecord `json:"record"`
	OtherUserID string             `json:"otherUserId"`
	Profile     *models.Profile    `json:"profile,omitempty"`
}

// HandleGetMatches returns the user's mutual matches, most recent first,
// each enriched with the other party's profile when the directory still has
// it.
func (mc *MatchController) HandleGetMatches(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "userId is required", http.StatusBadRequest)
		return
	}

	matches, err := mc.Registry.ListMutualMatches(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	requester, err := mc.Directory.GetProfile(r.Context(), userID)
	if err != nil && !errors.Is(err, services.ErrNotFound) {
		writeError(w, err)
		return
	}

	views := make([]matchView, 0, len(matches))
	for _, match := range matches {
		view := matchView{Record: match.Record, OtherUserID: match.OtherUserID}

		profile, err := mc.Directory.GetProfile(r.Context(), match.OtherUserID)
		if err == nil {
			attachDistance(requester, profile)
			view.Profile = profile
		} else if !errors.Is(err, services.ErrNotFound) {
			writeError(w, err)
			return
		}

		views = append(views, view)
	}

	writeJSON(w, http.StatusOK, views)
}

// attachDistance computes the distance between the two profiles when both
// have coordinates recorded; profiles without them are left untouched.
func attachDistance(requester, profile *models.Profile) {
	if requester == nil {
		return
	}
	if requester.Location.Latitude == 0 || requester.Location.Longitude == 0 ||
		profile.Location.Latitude == 0 || profile.Location.Longitude == 0 {
		return
	}
	distance := utils.CalculateDistance(
		requester.Location.Latitude, requester.Location.Longitude,
		profile.Location.Latitude, profile.Location.Longitude,
	)
	profile.DistanceKm = math.Round(distance*100) / 100
}
