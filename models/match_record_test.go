package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalPair(t *testing.T) {
	a1, b1 := CanonicalPair("alice", "bob")
	a2, b2 := CanonicalPair("bob", "alice")

	assert.Equal(t, "alice", a1)
	assert.Equal(t, "bob", b1)
	assert.Equal(t, a1, a2)
	assert.Equal(t, b1, b2)
}

func TestPairIDOrderIndependent(t *testing.T) {
	assert.Equal(t, PairID("alice", "bob"), PairID("bob", "alice"))
	assert.Equal(t, "alice#bob", PairID("bob", "alice"))
}

func TestMatchRecordHelpers(t *testing.T) {
	record := MatchRecord{UserA: "alice", UserB: "bob"}

	assert.Equal(t, "bob", record.OtherUser("alice"))
	assert.Equal(t, "alice", record.OtherUser("bob"))
	assert.True(t, record.Involves("alice"))
	assert.True(t, record.Involves("bob"))
	assert.False(t, record.Involves("carol"))
}
