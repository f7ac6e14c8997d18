package models

import "time"

// CallSession represents one call attempt between exactly two users. Sessions
// live only in memory and are removed once they reach a terminal state.
type CallSession struct {
	SessionID  string     `json:"sessionId"`
	CallerID   string     `json:"callerId"`
	ReceiverID string     `json:"receiverId"`
	CallType   string     `json:"callType"` // "video" or "voice"
	State      string     `json:"state"`
	StartedAt  time.Time  `json:"startedAt"`
	EndedAt    *time.Time `json:"endedAt,omitempty"`
	EndedBy    string     `json:"endedBy,omitempty"`
}

// Terminal reports whether the session can no longer change state.
func (s *CallSession) Terminal() bool {
	return s.State == CallStateRejected || s.State == CallStateEnded
}

// Involves reports whether the given user is a participant.
func (s *CallSession) Involves(userID string) bool {
	return s.CallerID == userID || s.ReceiverID == userID
}

// OtherParty returns the participant that is not the given user.
func (s *CallSession) OtherParty(userID string) string {
	if s.CallerID == userID {
		return s.ReceiverID
	}
	return s.CallerID
}

// IncomingCallPayload is sent to the receiver when a call starts ringing.
type IncomingCallPayload struct {
	SessionID string `json:"sessionId"`
	CallerID  string `json:"callerId"`
	CallType  string `json:"callType"`
}

// CallAnswerPayload is sent back to the caller on accept/reject.
type CallAnswerPayload struct {
	SessionID  string `json:"sessionId"`
	ReceiverID string `json:"receiverId"`
}

// CallEndedPayload is sent to the party that did not hang up.
type CallEndedPayload struct {
	SessionID string `json:"sessionId"`
	UserID    string `json:"userId"` // who ended the call
}
