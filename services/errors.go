package services

import "errors"

// Error taxonomy shared by all services. Callers match with errors.Is; the
// controllers map these onto HTTP status codes.
var (
	// ErrInvalidOperation covers self-likes, malformed criteria and
	// state-machine violations such as accepting an already-ended call.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrNotFound is returned when a user, profile or call session does not
	// exist.
	ErrNotFound = errors.New("not found")

	// ErrUnreachablePeer is returned by call setup when the receiver has no
	// active connection and the reachability policy is enabled.
	ErrUnreachablePeer = errors.New("peer unreachable")

	// ErrConflict is reserved for racing mutations detected by a store.
	ErrConflict = errors.New("conflict")
)
