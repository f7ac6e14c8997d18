package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"kindred_server/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry() *MatchRegistry {
	return NewMatchRegistry(NewMemoryMatchStore())
}

func TestLikeThenLikeBackIsMutual(t *testing.T) {
	mr := newTestRegistry()
	ctx := context.Background()

	first, err := mr.Like(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.False(t, first.NewlyMutual)
	assert.False(t, first.Record.IsMutual)
	assert.Empty(t, first.Record.MatchedAt)

	second, err := mr.Like(ctx, "bob", "alice")
	require.NoError(t, err)
	assert.True(t, second.NewlyMutual)
	assert.True(t, second.Record.IsMutual)
	assert.NotEmpty(t, second.Record.MatchedAt)
}

func TestLikeMutualRegardlessOfOrder(t *testing.T) {
	orders := [][2][2]string{
		{{"alice", "bob"}, {"bob", "alice"}},
		{{"bob", "alice"}, {"alice", "bob"}},
	}

	for _, order := range orders {
		mr := newTestRegistry()
		ctx := context.Background()

		_, err := mr.Like(ctx, order[0][0], order[0][1])
		require.NoError(t, err)

		result, err := mr.Like(ctx, order[1][0], order[1][1])
		require.NoError(t, err)
		assert.True(t, result.Record.IsMutual)
	}
}

func TestDuplicateLikeIsIdempotent(t *testing.T) {
	mr := newTestRegistry()
	ctx := context.Background()

	_, err := mr.Like(ctx, "alice", "bob")
	require.NoError(t, err)
	first, err := mr.Like(ctx, "bob", "alice")
	require.NoError(t, err)
	matchedAt := first.Record.MatchedAt

	// Force a different timestamp for any later (incorrect) restamp to use.
	mr.now = func() time.Time { return time.Now().Add(time.Hour) }

	repeat, err := mr.Like(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.False(t, repeat.NewlyMutual, "a repeated like must not re-trigger the mutual transition")
	assert.Equal(t, matchedAt, repeat.Record.MatchedAt, "matchedAt is stamped exactly once")
}

func TestSelfLikeFails(t *testing.T) {
	mr := newTestRegistry()

	_, err := mr.Like(context.Background(), "alice", "alice")
	assert.ErrorIs(t, err, ErrInvalidOperation)
}

func TestPassDeletesMutualRecord(t *testing.T) {
	mr := newTestRegistry()
	ctx := context.Background()

	_, err := mr.Like(ctx, "alice", "bob")
	require.NoError(t, err)
	_, err = mr.Like(ctx, "bob", "alice")
	require.NoError(t, err)

	require.NoError(t, mr.Pass(ctx, "alice", "bob"))

	matches, err := mr.ListMutualMatches(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, matches, "pass deletes the whole record, mutual status included")

	// With the record gone, bob is no longer excluded for alice and may be
	// re-surfaced by discovery.
	excluded, err := mr.ListExcludedFor(ctx, "alice")
	require.NoError(t, err)
	assert.NotContains(t, excluded, "bob")
}

func TestPassWithoutRecordIsNoOp(t *testing.T) {
	mr := newTestRegistry()
	assert.NoError(t, mr.Pass(context.Background(), "alice", "bob"))
}

func TestListMutualMatchesOrderedByMatchedAtDesc(t *testing.T) {
	mr := newTestRegistry()
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i, other := range []string{"bob", "carol", "dave"} {
		stamp := base.Add(time.Duration(i) * time.Minute)
		mr.now = func() time.Time { return stamp }

		_, err := mr.Like(ctx, "alice", other)
		require.NoError(t, err)
		_, err = mr.Like(ctx, other, "alice")
		require.NoError(t, err)
	}

	matches, err := mr.ListMutualMatches(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, matches, 3)
	assert.Equal(t, "dave", matches[0].OtherUserID)
	assert.Equal(t, "carol", matches[1].OtherUserID)
	assert.Equal(t, "bob", matches[2].OtherUserID)
}

func TestListExcludedForIncludesEveryRecordState(t *testing.T) {
	mr := newTestRegistry()
	ctx := context.Background()

	// one-sided like by alice
	_, err := mr.Like(ctx, "alice", "bob")
	require.NoError(t, err)
	// one-sided like of alice
	_, err = mr.Like(ctx, "carol", "alice")
	require.NoError(t, err)
	// mutual
	_, err = mr.Like(ctx, "alice", "dave")
	require.NoError(t, err)
	_, err = mr.Like(ctx, "dave", "alice")
	require.NoError(t, err)

	excluded, err := mr.ListExcludedFor(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"bob": true, "carol": true, "dave": true}, excluded)
}

func TestLikeNotFoundStoreErrorPropagates(t *testing.T) {
	mr := NewMatchRegistry(&failingMatchStore{})

	_, err := mr.Like(context.Background(), "alice", "bob")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidOperation)
}

func TestConcurrentCrossLikesProduceOneMutualTransition(t *testing.T) {
	mr := newTestRegistry()
	ctx := context.Background()

	const attempts = 50
	for i := 0; i < attempts; i++ {
		a := fmt.Sprintf("user-a-%d", i)
		b := fmt.Sprintf("user-b-%d", i)

		var wg sync.WaitGroup
		results := make([]*LikeResult, 2)
		wg.Add(2)
		go func() {
			defer wg.Done()
			r, err := mr.Like(ctx, a, b)
			assert.NoError(t, err)
			results[0] = r
		}()
		go func() {
			defer wg.Done()
			r, err := mr.Like(ctx, b, a)
			assert.NoError(t, err)
			results[1] = r
		}()
		wg.Wait()

		transitions := 0
		for _, r := range results {
			if r != nil && r.NewlyMutual {
				transitions++
			}
		}
		assert.Equal(t, 1, transitions, "exactly one of two racing likes observes the mutual transition")
	}
}

// failingMatchStore errors on every operation.
type failingMatchStore struct{}

func (f *failingMatchStore) Get(context.Context, string) (*models.MatchRecord, error) {
	return nil, errors.New("store unavailable")
}
func (f *failingMatchStore) Put(context.Context, *models.MatchRecord) error {
	return errors.New("store unavailable")
}
func (f *failingMatchStore) Delete(context.Context, string) error {
	return errors.New("store unavailable")
}
func (f *failingMatchStore) ListByUser(context.Context, string) ([]models.MatchRecord, error) {
	return nil, errors.New("store unavailable")
}
