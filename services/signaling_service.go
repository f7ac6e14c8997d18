package services

import (
	"fmt"
	"log"
	"sync"
	"time"

	"kindred_server/models"

	"github.com/google/uuid"
)

// SignalingBus delivers a routed event to every active connection of a user.
// The socket package provides the production implementation over per-user
// socket.io rooms; tests use a recording bus.
type SignalingBus interface {
	Emit(userID, event string, payload interface{})
}

// callSession wraps the session record with its own lock. Transitions and
// the emissions they cause happen under this lock, which both serializes
// concurrent signals for one call and preserves per-session event ordering.
type callSession struct {
	mu      sync.Mutex
	session models.CallSession
}

// SignalingRelay owns the call-session state machine:
//
//	ringing -> accepted -> ended
//	ringing -> rejected
//	ringing|accepted -> ended (hangup or disconnect by either side)
//
// Sessions live only in memory and are dropped once terminal.
type SignalingRelay struct {
	Bus      SignalingBus
	Presence PresenceTracker

	// RequireReachable gates the reachability check on call setup.
	RequireReachable bool

	mu       sync.RWMutex
	sessions map[string]*callSession
	now      func() time.Time
}

func NewSignalingRelay(bus SignalingBus, presence PresenceTracker, requireReachable bool) *SignalingRelay {
	return &SignalingRelay{
		Bus:              bus,
		Presence:         presence,
		RequireReachable: requireReachable,
		sessions:         make(map[string]*callSession),
		now:              time.Now,
	}
}

func (sr *SignalingRelay) lookup(sessionID string) (*callSession, error) {
	sr.mu.RLock()
	defer sr.mu.RUnlock()

	cs, ok := sr.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("call session %s: %w", sessionID, ErrNotFound)
	}
	return cs, nil
}

// PruneTerminal removes terminal sessions that ended more than maxAge ago
// and returns how many were dropped. Terminal sessions are kept around for a
// while so a duplicate hangup still resolves as a no-op instead of a
// NotFound.
func (sr *SignalingRelay) PruneTerminal(maxAge time.Duration) int {
	cutoff := sr.now().Add(-maxAge)

	sr.mu.Lock()
	defer sr.mu.Unlock()

	pruned := 0
	for id, cs := range sr.sessions {
		cs.mu.Lock()
		expired := cs.session.Terminal() && cs.session.EndedAt != nil && cs.session.EndedAt.Before(cutoff)
		cs.mu.Unlock()
		if expired {
			delete(sr.sessions, id)
			pruned++
		}
	}
	return pruned
}

// StartCleanupLoop prunes terminal sessions every interval until stop is
// closed.
func (sr *SignalingRelay) StartCleanupLoop(interval, maxAge time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if pruned := sr.PruneTerminal(maxAge); pruned > 0 {
				log.Printf("signaling: pruned %d finished call sessions", pruned)
			}
		}
	}
}

// RequestCall creates a ringing session and signals the receiver. The caller
// gets the session id back and waits for call-accepted / call-rejected on its
// own channel. An unanswered call is abandoned by the client side; the relay
// does not time it out.
func (sr *SignalingRelay) RequestCall(callerID, receiverID, callType string) (*models.CallSession, error) {
	if callerID == "" || receiverID == "" {
		return nil, fmt.Errorf("caller and receiver are required: %w", ErrInvalidOperation)
	}
	if callerID == receiverID {
		return nil, fmt.Errorf("user %s cannot call themselves: %w", callerID, ErrInvalidOperation)
	}
	if callType != models.CallTypeVideo && callType != models.CallTypeVoice {
		return nil, fmt.Errorf("unknown call type %q: %w", callType, ErrInvalidOperation)
	}
	if sr.RequireReachable && !sr.Presence.IsReachable(receiverID) {
		return nil, fmt.Errorf("user %s is offline: %w", receiverID, ErrUnreachablePeer)
	}

	cs := &callSession{
		session: models.CallSession{
			SessionID:  uuid.NewString(),
			CallerID:   callerID,
			ReceiverID: receiverID,
			CallType:   callType,
			State:      models.CallStateRinging,
			StartedAt:  sr.now(),
		},
	}

	sr.mu.Lock()
	sr.sessions[cs.session.SessionID] = cs
	sr.mu.Unlock()

	sr.Presence.SetActiveSession(callerID, cs.session.SessionID)
	sr.Presence.SetActiveSession(receiverID, cs.session.SessionID)

	cs.mu.Lock()
	defer cs.mu.Unlock()
	sr.Bus.Emit(receiverID, models.EventIncomingCall, models.IncomingCallPayload{
		SessionID: cs.session.SessionID,
		CallerID:  callerID,
		CallType:  callType,
	})

	session := cs.session
	return &session, nil
}

// AcceptCall moves a ringing session to accepted and signals the caller.
func (sr *SignalingRelay) AcceptCall(sessionID string) error {
	cs, err := sr.lookup(sessionID)
	if err != nil {
		return err
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.session.State != models.CallStateRinging {
		return fmt.Errorf("cannot accept call in state %q: %w", cs.session.State, ErrInvalidOperation)
	}

	cs.session.State = models.CallStateAccepted
	sr.Bus.Emit(cs.session.CallerID, models.EventCallAccepted, models.CallAnswerPayload{
		SessionID:  sessionID,
		ReceiverID: cs.session.ReceiverID,
	})
	return nil
}

// RejectCall moves a ringing session to its terminal rejected state, signals
// the caller and drops the session.
func (sr *SignalingRelay) RejectCall(sessionID string) error {
	cs, err := sr.lookup(sessionID)
	if err != nil {
		return err
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.session.State != models.CallStateRinging {
		return fmt.Errorf("cannot reject call in state %q: %w", cs.session.State, ErrInvalidOperation)
	}

	cs.session.State = models.CallStateRejected
	endedAt := sr.now()
	cs.session.EndedAt = &endedAt

	sr.Bus.Emit(cs.session.CallerID, models.EventCallRejected, models.CallAnswerPayload{
		SessionID:  sessionID,
		ReceiverID: cs.session.ReceiverID,
	})

	sr.clearSession(&cs.session)
	return nil
}

// EndCall hangs up a ringing or accepted session and signals the other
// party. Ending an already-terminal session is a no-op so duplicate hangups
// from both sides never error.
func (sr *SignalingRelay) EndCall(sessionID, endedBy string) error {
	cs, err := sr.lookup(sessionID)
	if err != nil {
		return err
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()

	if cs.session.Terminal() {
		return nil
	}
	if endedBy == "" || !cs.session.Involves(endedBy) {
		return fmt.Errorf("user %s is not part of call %s: %w", endedBy, sessionID, ErrInvalidOperation)
	}

	cs.session.State = models.CallStateEnded
	cs.session.EndedBy = endedBy
	endedAt := sr.now()
	cs.session.EndedAt = &endedAt

	other := cs.session.OtherParty(endedBy)
	sr.Bus.Emit(other, models.EventCallEnded, models.CallEndedPayload{
		SessionID: sessionID,
		UserID:    endedBy,
	})

	sr.clearSession(&cs.session)
	return nil
}

// EndAllFor ends every non-terminal session the user participates in, on
// their behalf. The socket layer calls this when a user's last connection
// drops mid-call.
func (sr *SignalingRelay) EndAllFor(userID string) {
	sr.mu.RLock()
	var ids []string
	for id, cs := range sr.sessions {
		if cs.session.Involves(userID) {
			ids = append(ids, id)
		}
	}
	sr.mu.RUnlock()

	for _, id := range ids {
		if err := sr.EndCall(id, userID); err != nil {
			log.Printf("signaling: failed to end call %s for disconnected user %s: %v", id, userID, err)
		}
	}
}

// Session returns a snapshot of a live session.
func (sr *SignalingRelay) Session(sessionID string) (*models.CallSession, error) {
	cs, err := sr.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	cs.mu.Lock()
	defer cs.mu.Unlock()
	session := cs.session
	return &session, nil
}

// clearSession is called with the session lock held, after a terminal
// transition. The session itself stays in the table until PruneTerminal so
// duplicate hangups keep resolving as no-ops.
func (sr *SignalingRelay) clearSession(session *models.CallSession) {
	sr.Presence.ClearActiveSession(session.CallerID)
	sr.Presence.ClearActiveSession(session.ReceiverID)
}
