package services

import (
	"context"
	"sync"

	"kindred_server/models"
)

// MatchStore persists match records keyed by canonical pair id. The registry
// serializes all access per pair, so implementations only need to be safe for
// concurrent access to distinct pairs.
type MatchStore interface {
	// Get returns the record for the pair id, or ErrNotFound.
	Get(ctx context.Context, pairID string) (*models.MatchRecord, error)
	// Put creates or replaces the record.
	Put(ctx context.Context, record *models.MatchRecord) error
	// Delete removes the record; deleting a missing record is a no-op.
	Delete(ctx context.Context, pairID string) error
	// ListByUser returns every record where the user is one of the parties.
	ListByUser(ctx context.Context, userID string) ([]models.MatchRecord, error)
}

// MemoryMatchStore keeps match records in a map. It is the default store and
// the one the tests run against.
type MemoryMatchStore struct {
	mu      sync.RWMutex
	records map[string]models.MatchRecord
}

func NewMemoryMatchStore() *MemoryMatchStore {
	return &MemoryMatchStore{records: make(map[string]models.MatchRecord)}
}

func (s *MemoryMatchStore) Get(_ context.Context, pairID string) (*models.MatchRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	record, ok := s.records[pairID]
	if !ok {
		return nil, ErrNotFound
	}
	copy := record
	return &copy, nil
}

func (s *MemoryMatchStore) Put(_ context.Context, record *models.MatchRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.PairID] = *record
	return nil
}

func (s *MemoryMatchStore) Delete(_ context.Context, pairID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, pairID)
	return nil
}

func (s *MemoryMatchStore) ListByUser(_ context.Context, userID string) ([]models.MatchRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.MatchRecord
	for _, record := range s.records {
		if record.Involves(userID) {
			out = append(out, record)
		}
	}
	return out, nil
}
