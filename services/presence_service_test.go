package services

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresenceConnectDisconnect(t *testing.T) {
	ps := NewPresenceService()

	assert.False(t, ps.IsReachable("alice"))

	ps.Connect("alice")
	assert.True(t, ps.IsReachable("alice"))

	ps.Disconnect("alice")
	assert.False(t, ps.IsReachable("alice"))
}

func TestPresenceCountsConnections(t *testing.T) {
	ps := NewPresenceService()

	// Two tabs open: closing one must not mark the user offline.
	ps.Connect("alice")
	ps.Connect("alice")
	ps.Disconnect("alice")
	assert.True(t, ps.IsReachable("alice"))

	ps.Disconnect("alice")
	assert.False(t, ps.IsReachable("alice"))
}

func TestPresenceDisconnectNeverGoesNegative(t *testing.T) {
	ps := NewPresenceService()

	ps.Disconnect("alice")
	ps.Connect("alice")
	assert.True(t, ps.IsReachable("alice"), "a stray disconnect must not shadow a later connect")
}

func TestPresenceLastSeenUpdates(t *testing.T) {
	ps := NewPresenceService()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ps.now = func() time.Time { return base }
	ps.Connect("alice")

	seen, ok := ps.LastSeen("alice")
	require.True(t, ok)
	assert.Equal(t, base, seen)

	later := base.Add(time.Minute)
	ps.now = func() time.Time { return later }
	ps.Disconnect("alice")

	seen, ok = ps.LastSeen("alice")
	require.True(t, ok)
	assert.Equal(t, later, seen)

	_, ok = ps.LastSeen("stranger")
	assert.False(t, ok)
}

func TestPresenceActiveSession(t *testing.T) {
	ps := NewPresenceService()

	ps.Connect("alice")
	ps.SetActiveSession("alice", "session-1")

	state, ok := ps.State("alice")
	require.True(t, ok)
	assert.Equal(t, "session-1", state.ActiveSessionID)

	ps.ClearActiveSession("alice")
	state, _ = ps.State("alice")
	assert.Empty(t, state.ActiveSessionID)
}

func setupRedisPresence(t *testing.T) *RedisPresenceService {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("Failed to start miniredis: %v", err)
	}
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisPresenceService(client)
}

func TestRedisPresenceConnectDisconnect(t *testing.T) {
	ps := setupRedisPresence(t)

	assert.False(t, ps.IsReachable("alice"))

	ps.Connect("alice")
	ps.Connect("alice")
	ps.Disconnect("alice")
	assert.True(t, ps.IsReachable("alice"))

	ps.Disconnect("alice")
	assert.False(t, ps.IsReachable("alice"))
}

func TestRedisPresenceState(t *testing.T) {
	ps := setupRedisPresence(t)

	_, ok := ps.State("stranger")
	assert.False(t, ok)

	ps.Connect("alice")
	ps.SetActiveSession("alice", "session-9")

	state, ok := ps.State("alice")
	require.True(t, ok)
	assert.True(t, state.IsOnline)
	assert.Equal(t, 1, state.Connections)
	assert.Equal(t, "session-9", state.ActiveSessionID)
	assert.False(t, state.LastSeenAt.IsZero())

	ps.ClearActiveSession("alice")
	state, _ = ps.State("alice")
	assert.Empty(t, state.ActiveSessionID)
}
