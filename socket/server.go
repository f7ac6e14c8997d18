package socket

import (
	"log"

	socketio "github.com/googollee/go-socket.io"

	"kindred_server/metrics"
	"kindred_server/models"
	"kindred_server/services"
)

// Bus delivers signaling events over per-user socket.io rooms. Every active
// connection of a user joins the same room, so one Emit reaches all of them.
type Bus struct {
	server *socketio.Server
}

// Emit implements services.SignalingBus.
func (b *Bus) Emit(userID, event string, payload interface{}) {
	metrics.SignalEmitted(event)
	b.server.BroadcastToRoom("/", models.UserRoom(userID), event, payload)
}

// NewSocketServer initializes the Socket.IO server and returns it together
// with the event bus the signaling relay publishes through.
func NewSocketServer() (*socketio.Server, *Bus) {
	server := socketio.NewServer(nil)
	return server, &Bus{server: server}
}

// RegisterHandlers wires connection lifecycle and call events onto the
// server. Clients must send a "join" with their userId right after
// connecting; until then a connection is anonymous and receives nothing.
func RegisterHandlers(server *socketio.Server, presence services.PresenceTracker, relay *services.SignalingRelay) {
	server.OnConnect("/", func(s socketio.Conn) error {
		log.Println("Socket connected:", s.ID())
		return nil
	})

	server.OnEvent("/", "join", func(s socketio.Conn, data map[string]string) {
		userID := data["userId"]
		if userID == "" {
			log.Println("Invalid userId in join request")
			return
		}
		s.SetContext(userID)
		s.Join(models.UserRoom(userID))
		presence.Connect(userID)
		log.Printf("User %s joined channel %s\n", userID, models.UserRoom(userID))
	})

	server.OnEvent("/", "call-user", func(s socketio.Conn, data map[string]string) {
		callerID := connUserID(s)
		if callerID == "" {
			s.Emit("call-error", "join before calling")
			return
		}

		session, err := relay.RequestCall(callerID, data["targetUserId"], data["callType"])
		if err != nil {
			log.Printf("Call request from %s failed: %v", callerID, err)
			s.Emit("call-error", err.Error())
			return
		}

		metrics.CallRequested(session.CallType)
		s.Emit("call-requested", session)
	})

	server.OnEvent("/", "accept-call", func(s socketio.Conn, data map[string]string) {
		if err := relay.AcceptCall(data["sessionId"]); err != nil {
			s.Emit("call-error", err.Error())
		}
	})

	server.OnEvent("/", "reject-call", func(s socketio.Conn, data map[string]string) {
		if err := relay.RejectCall(data["sessionId"]); err != nil {
			s.Emit("call-error", err.Error())
		}
	})

	server.OnEvent("/", "end-call", func(s socketio.Conn, data map[string]string) {
		if err := relay.EndCall(data["sessionId"], connUserID(s)); err != nil {
			s.Emit("call-error", err.Error())
		}
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		userID := connUserID(s)
		log.Println("Socket disconnected:", s.ID(), reason)
		if userID == "" {
			return
		}

		presence.Disconnect(userID)
		// Only a user whose last connection dropped abandons their calls;
		// another open tab keeps the session alive.
		if !presence.IsReachable(userID) {
			relay.EndAllFor(userID)
		}
	})

	server.OnError("/", func(s socketio.Conn, err error) {
		log.Println("Socket error:", err)
	})
}

func connUserID(s socketio.Conn) string {
	if userID, ok := s.Context().(string); ok {
		return userID
	}
	return ""
}
