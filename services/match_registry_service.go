package services

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"sort"
	"sync"
	"time"

	"kindred_server/models"
)

// pairLockStripes is the number of locks the registry shards pairs over.
// Unrelated pairs almost always map to different stripes, so likes between
// different couples do not serialize each other.
const pairLockStripes = 64

// MatchRegistry owns the like/pass/match state machine. Every read-modify-
// write on a pair record happens under that pair's stripe lock, which is the
// only thing that keeps double-likes and rematches race-free.
type MatchRegistry struct {
	Store MatchStore

	locks [pairLockStripes]sync.Mutex
	now   func() time.Time
}

func NewMatchRegistry(store MatchStore) *MatchRegistry {
	return &MatchRegistry{Store: store, now: time.Now}
}

func (mr *MatchRegistry) lockFor(pairID string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(pairID))
	return &mr.locks[h.Sum32()%pairLockStripes]
}

// LikeResult is what a like action produced.
type LikeResult struct {
	Record *models.MatchRecord `json:"record"`
	// NewlyMutual is true only on the call that flipped the pair to mutual,
	// so callers know when to notify both parties.
	NewlyMutual bool `json:"newlyMutual"`
}

// Like records that actor liked target. Liking twice is a no-op; the mutual
// transition happens exactly once per record lifetime.
func (mr *MatchRegistry) Like(ctx context.Context, actorID, targetID string) (*LikeResult, error) {
	if actorID == targetID {
		return nil, fmt.Errorf("user %s cannot like themselves: %w", actorID, ErrInvalidOperation)
	}
	if actorID == "" || targetID == "" {
		return nil, fmt.Errorf("both user ids are required: %w", ErrInvalidOperation)
	}

	pairID := models.PairID(actorID, targetID)
	lock := mr.lockFor(pairID)
	lock.Lock()
	defer lock.Unlock()

	record, err := mr.Store.Get(ctx, pairID)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	if record == nil {
		userA, userB := models.CanonicalPair(actorID, targetID)
		record = &models.MatchRecord{
			PairID:    pairID,
			UserA:     userA,
			UserB:     userB,
			CreatedAt: mr.now().UTC().Format(time.RFC3339),
		}
	}

	if record.UserA == actorID {
		record.LikedByA = true
	} else {
		record.LikedByB = true
	}

	newlyMutual := false
	if record.LikedByA && record.LikedByB && !record.IsMutual {
		record.IsMutual = true
		record.MatchedAt = mr.now().UTC().Format(time.RFC3339)
		newlyMutual = true
	}

	if err := mr.Store.Put(ctx, record); err != nil {
		return nil, err
	}

	return &LikeResult{Record: record, NewlyMutual: newlyMutual}, nil
}

// Pass deletes the pair record outright, mutual or not. Passing a pair with
// no record is a no-op, not an error.
func (mr *MatchRegistry) Pass(ctx context.Context, actorID, targetID string) error {
	if actorID == targetID {
		return fmt.Errorf("user %s cannot pass on themselves: %w", actorID, ErrInvalidOperation)
	}
	if actorID == "" || targetID == "" {
		return fmt.Errorf("both user ids are required: %w", ErrInvalidOperation)
	}

	pairID := models.PairID(actorID, targetID)
	lock := mr.lockFor(pairID)
	lock.Lock()
	defer lock.Unlock()

	return mr.Store.Delete(ctx, pairID)
}

// MutualMatch pairs a mutual record with the counterpart's id for the
// requesting user.
type MutualMatch struct {
	Record      models.MatchRecord `json:"record"`
	OtherUserID string             `json:"otherUserId"`
}

// ListMutualMatches returns the user's mutual matches, most recent first.
func (mr *MatchRegistry) ListMutualMatches(ctx context.Context, userID string) ([]MutualMatch, error) {
	records, err := mr.Store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var matches []MutualMatch
	for _, record := range records {
		if !record.IsMutual {
			continue
		}
		matches = append(matches, MutualMatch{
			Record:      record,
			OtherUserID: record.OtherUser(userID),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Record.MatchedAt > matches[j].Record.MatchedAt
	})
	return matches, nil
}

// ListExcludedFor returns every counterpart id with any record against the
// user, in whatever state. Discovery removes these before filtering. A
// passed user has no record anymore and so becomes eligible to reappear.
func (mr *MatchRegistry) ListExcludedFor(ctx context.Context, userID string) (map[string]bool, error) {
	records, err := mr.Store.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	excluded := make(map[string]bool, len(records))
	for _, record := range records {
		excluded[record.OtherUser(userID)] = true
	}
	return excluded, nil
}
