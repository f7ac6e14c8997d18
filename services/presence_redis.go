package services

import (
	"context"
	"log"
	"time"

	"kindred_server/models"

	"github.com/redis/go-redis/v9"
)

// Redis key layout for presence. Connection counts use INCR/DECR so updates
// stay atomic per user even with several server instances in front of the
// same Redis.
const (
	presenceConnPrefix    = "presence:conn:"
	presenceSeenPrefix    = "presence:seen:"
	presenceSessionPrefix = "presence:session:"
)

// RedisPresenceService is a PresenceTracker backed by Redis, for deployments
// where socket connections land on more than one instance.
type RedisPresenceService struct {
	rdb *redis.Client
	ctx context.Context
	now func() time.Time
}

func NewRedisPresenceService(rdb *redis.Client) *RedisPresenceService {
	return &RedisPresenceService{rdb: rdb, ctx: context.Background(), now: time.Now}
}

func (ps *RedisPresenceService) touch(userID string) {
	if err := ps.rdb.Set(ps.ctx, presenceSeenPrefix+userID, ps.now().UTC().Format(time.RFC3339Nano), 0).Err(); err != nil {
		log.Printf("presence: failed to update last seen for %s: %v", userID, err)
	}
}

func (ps *RedisPresenceService) Connect(userID string) {
	if err := ps.rdb.Incr(ps.ctx, presenceConnPrefix+userID).Err(); err != nil {
		log.Printf("presence: failed to register connection for %s: %v", userID, err)
		return
	}
	ps.touch(userID)
}

func (ps *RedisPresenceService) Disconnect(userID string) {
	count, err := ps.rdb.Decr(ps.ctx, presenceConnPrefix+userID).Result()
	if err != nil {
		log.Printf("presence: failed to unregister connection for %s: %v", userID, err)
		return
	}
	// Clamp at zero; a stray duplicate disconnect must not push the count
	// negative and shadow a later connect.
	if count < 0 {
		ps.rdb.Set(ps.ctx, presenceConnPrefix+userID, 0, 0)
	}
	ps.touch(userID)
}

func (ps *RedisPresenceService) IsReachable(userID string) bool {
	count, err := ps.rdb.Get(ps.ctx, presenceConnPrefix+userID).Int64()
	if err != nil {
		return false
	}
	return count > 0
}

func (ps *RedisPresenceService) LastSeen(userID string) (time.Time, bool) {
	raw, err := ps.rdb.Get(ps.ctx, presenceSeenPrefix+userID).Result()
	if err != nil {
		return time.Time{}, false
	}
	seen, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}, false
	}
	return seen, true
}

func (ps *RedisPresenceService) SetActiveSession(userID, sessionID string) {
	if err := ps.rdb.Set(ps.ctx, presenceSessionPrefix+userID, sessionID, 0).Err(); err != nil {
		log.Printf("presence: failed to set active session for %s: %v", userID, err)
	}
}

func (ps *RedisPresenceService) ClearActiveSession(userID string) {
	if err := ps.rdb.Del(ps.ctx, presenceSessionPrefix+userID).Err(); err != nil {
		log.Printf("presence: failed to clear active session for %s: %v", userID, err)
	}
}

func (ps *RedisPresenceService) State(userID string) (models.PresenceState, bool) {
	count, err := ps.rdb.Get(ps.ctx, presenceConnPrefix+userID).Int64()
	if err != nil && err != redis.Nil {
		return models.PresenceState{}, false
	}

	seen, seenOK := ps.LastSeen(userID)
	if err == redis.Nil && !seenOK {
		return models.PresenceState{}, false
	}

	sessionID, _ := ps.rdb.Get(ps.ctx, presenceSessionPrefix+userID).Result()

	return models.PresenceState{
		UserID:          userID,
		IsOnline:        count > 0,
		LastSeenAt:      seen,
		Connections:     int(count),
		ActiveSessionID: sessionID,
	}, true
}
