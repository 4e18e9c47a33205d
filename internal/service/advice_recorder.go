package service

import (
	"context"
	"fmt"
	"time"

	"github.com/desertfarm/backend/internal/domain"
)

// AdviceRecorder persists advice exchanges and reads them back by recency
type AdviceRecorder struct {
	repo AdviceRepository
	now  func() time.Time
}

// NewAdviceRecorder creates a new advice recorder
func NewAdviceRecorder(repo AdviceRepository) *AdviceRecorder {
	return &AdviceRecorder{
		repo: repo,
		now:  time.Now,
	}
}

// Save stores rec, stamping it with the current time when no timestamp is set
func (r *AdviceRecorder) Save(ctx context.Context, rec domain.NewAdviceHistory) (domain.AdviceHistoryRecord, error) {
	if rec.Timestamp.IsZero() {
		rec.Timestamp = r.now().UTC()
	}

	stored, err := r.repo.SaveAdviceHistory(ctx, rec)
	if err != nil {
		return domain.AdviceHistoryRecord{}, fmt.Errorf("recorder: save advice history: %w", err)
	}
	return stored, nil
}

// List returns at most limit records, most recent first.
// Limits outside [1,100] are rejected before the store is queried.
func (r *AdviceRecorder) List(ctx context.Context, limit int) ([]domain.AdviceHistoryRecord, error) {
	if limit < domain.MinHistoryLimit || limit > domain.MaxHistoryLimit {
		return nil, domain.ErrInvalidLimit
	}

	records, err := r.repo.GetAdviceHistory(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("recorder: get advice history: %w", err)
	}
	if len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// Health reports whether the underlying store is reachable
func (r *AdviceRecorder) Health(ctx context.Context) error {
	return r.repo.Health(ctx)
}
