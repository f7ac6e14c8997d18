package models

import "time"

// PresenceState is the per-user reachability snapshot. A user counts as
// online while at least one connection is open; Connections tracks how many,
// so closing one tab does not mark a user with another tab still open as
// offline.
type PresenceState struct {
	UserID          string    `json:"userId"`
	IsOnline        bool      `json:"isOnline"`
	LastSeenAt      time.Time `json:"lastSeenAt"`
	Connections     int       `json:"connections"`
	ActiveSessionID string    `json:"activeSessionId,omitempty"`
}
