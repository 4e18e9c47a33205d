package memory

import (
	"context"
	"sync"

	"github.com/desertfarm/backend/internal/domain"
)

// Store is a concurrency-safe in-memory advice history.
// It is used in demo mode when no database is configured, and in tests.
type Store struct {
	mu      sync.RWMutex
	records []domain.AdviceHistoryRecord
	nextID  int64
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{nextID: 1}
}

// SaveAdviceHistory appends a record. A timestamp earlier than the last
// stored one is raised to it so insertion order and recency agree.
func (s *Store) SaveAdviceHistory(ctx context.Context, rec domain.NewAdviceHistory) (domain.AdviceHistoryRecord, error) {
	if err := ctx.Err(); err != nil {
		return domain.AdviceHistoryRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ts := rec.Timestamp.UTC()
	if n := len(s.records); n > 0 && ts.Before(s.records[n-1].Timestamp) {
		ts = s.records[n-1].Timestamp
	}

	stored := rec.Stored(s.nextID, ts)
	s.nextID++
	s.records = append(s.records, stored)
	return stored, nil
}

// GetAdviceHistory returns up to limit records, newest first
func (s *Store) GetAdviceHistory(ctx context.Context, limit int) ([]domain.AdviceHistoryRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.records)
	if limit > n {
		limit = n
	}
	if limit < 0 {
		limit = 0
	}

	out := make([]domain.AdviceHistoryRecord, 0, limit)
	for i := n - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.records[i])
	}
	return out, nil
}

// Health always returns nil for the in-memory store
func (s *Store) Health(ctx context.Context) error {
	return nil
}

// Len returns the number of stored records
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
