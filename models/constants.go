package models

// Genders
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// HasKids tri-state values ("" means unknown)
const (
	HasKidsYes = "yes"
	HasKidsNo  = "no"
)

// Call types
const (
	CallTypeVideo = "video"
	CallTypeVoice = "voice"
)

// Call session states
const (
	CallStateRinging  = "ringing"
	CallStateAccepted = "accepted"
	CallStateRejected = "rejected"
	CallStateEnded    = "ended"
)

// Signaling event names, delivered on per-user channels
const (
	EventIncomingCall = "incoming-call"
	EventCallAccepted = "call-accepted"
	EventCallRejected = "call-rejected"
	EventCallEnded    = "call-ended"
)

// UserRoom returns the per-user logical channel name. Every active connection
// of a user joins this room, so broadcasts reach all of them.
func UserRoom(userID string) string {
	return "user-" + userID
}
