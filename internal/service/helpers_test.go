package service

import (
	"context"
	"errors"
	"sync"

	"github.com/desertfarm/backend/internal/domain"
)

// captureGenerator records every request and answers with a fixed reply
type captureGenerator struct {
	mu       sync.Mutex
	reply    string
	err      error
	requests []domain.GenerationRequest
}

func (g *captureGenerator) GenerateText(ctx context.Context, req domain.GenerationRequest) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.requests = append(g.requests, req)
	return g.reply, g.err
}

func (g *captureGenerator) last() domain.GenerationRequest {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.requests[len(g.requests)-1]
}

// failingRepo fails every operation
type failingRepo struct {
	calls int
}

var errStoreDown = errors.New("store down")

func (r *failingRepo) SaveAdviceHistory(ctx context.Context, rec domain.NewAdviceHistory) (domain.AdviceHistoryRecord, error) {
	r.calls++
	return domain.AdviceHistoryRecord{}, errStoreDown
}

func (r *failingRepo) GetAdviceHistory(ctx context.Context, limit int) ([]domain.AdviceHistoryRecord, error) {
	r.calls++
	return nil, errStoreDown
}

func (r *failingRepo) Health(ctx context.Context) error {
	return errStoreDown
}

func sampleReading() domain.WeatherReading {
	name := "Al Ain"
	return domain.WeatherReading{
		Temperature:  38.2,
		Humidity:     22,
		Rainfall:     0,
		WindSpeed:    14.6,
		WeatherCode:  0,
		Latitude:     24.2,
		Longitude:    55.7,
		LocationName: &name,
	}
}
