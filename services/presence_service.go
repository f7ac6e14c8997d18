package services

import (
	"sync"
	"time"

	"kindred_server/models"
)

// PresenceTracker tracks which users are currently reachable. Connections
// are counted rather than flagged, so closing one tab while another is still
// open does not mark the user offline.
type PresenceTracker interface {
	Connect(userID string)
	Disconnect(userID string)
	IsReachable(userID string) bool
	LastSeen(userID string) (time.Time, bool)
	SetActiveSession(userID, sessionID string)
	ClearActiveSession(userID string)
	State(userID string) (models.PresenceState, bool)
}

// PresenceService is the in-memory PresenceTracker. Updates are independent
// per user; a single map mutex is enough since every operation is a short
// read-modify-write.
type PresenceService struct {
	mu    sync.RWMutex
	users map[string]*models.PresenceState
	now   func() time.Time
}

func NewPresenceService() *PresenceService {
	return &PresenceService{
		users: make(map[string]*models.PresenceState),
		now:   time.Now,
	}
}

func (ps *PresenceService) state(userID string) *models.PresenceState {
	state, ok := ps.users[userID]
	if !ok {
		state = &models.PresenceState{UserID: userID}
		ps.users[userID] = state
	}
	return state
}

// Connect registers one more open connection for the user.
func (ps *PresenceService) Connect(userID string) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	state := ps.state(userID)
	state.Connections++
	state.IsOnline = true
	state.LastSeenAt = ps.now()
}

// Disconnect unregisters one connection; the user stays online while any
// other connection remains. The count never goes below zero.
func (ps *PresenceService) Disconnect(userID string) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	state := ps.state(userID)
	if state.Connections > 0 {
		state.Connections--
	}
	state.IsOnline = state.Connections > 0
	state.LastSeenAt = ps.now()
}

func (ps *PresenceService) IsReachable(userID string) bool {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	state, ok := ps.users[userID]
	return ok && state.IsOnline
}

func (ps *PresenceService) LastSeen(userID string) (time.Time, bool) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	state, ok := ps.users[userID]
	if !ok {
		return time.Time{}, false
	}
	return state.LastSeenAt, true
}

func (ps *PresenceService) SetActiveSession(userID, sessionID string) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	ps.state(userID).ActiveSessionID = sessionID
}

func (ps *PresenceService) ClearActiveSession(userID string) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	ps.state(userID).ActiveSessionID = ""
}

// State returns a snapshot of the user's presence, false if never seen.
func (ps *PresenceService) State(userID string) (models.PresenceState, bool) {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	state, ok := ps.users[userID]
	if !ok {
		return models.PresenceState{}, false
	}
	return *state, true
}
