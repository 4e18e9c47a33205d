package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/desertfarm/backend/internal/domain"
)

// AdviceOutcome reports the advice result together with the fate of the
// history write. PersistErr is non-fatal and left to the caller to report.
type AdviceOutcome struct {
	Result     domain.AdviceResult
	Record     *domain.AdviceHistoryRecord
	PersistErr error
}

// AdviceService runs the advice pipeline for one request
type AdviceService struct {
	generator *AdviceGenerator
	recorder  *AdviceRecorder
	logger    *zap.Logger
	now       func() time.Time
}

// NewAdviceService creates a new advice service
func NewAdviceService(generator *AdviceGenerator, recorder *AdviceRecorder, logger *zap.Logger) *AdviceService {
	return &AdviceService{
		generator: generator,
		recorder:  recorder,
		logger:    logger,
		now:       time.Now,
	}
}

// GenerateAdvice composes the prompt, generates advice while the weather
// summary is formatted, then records the exchange. Only a generation failure
// is returned as an error.
func (s *AdviceService) GenerateAdvice(ctx context.Context, req domain.AdviceRequest) (AdviceOutcome, error) {
	location := LocationLabel(req.Weather, req.Language)
	prompt := ComposePrompt(req.Query, req.Language, req.Weather, location)

	var (
		advice  string
		summary string
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		text, err := s.generator.Generate(gctx, req.Language, prompt)
		if err != nil {
			return err
		}
		advice = text
		return nil
	})
	g.Go(func() error {
		summary = SummarizeWeather(req.Weather, req.Language)
		return nil
	})
	if err := g.Wait(); err != nil {
		return AdviceOutcome{}, err
	}

	outcome := AdviceOutcome{
		Result: domain.AdviceResult{
			Advice:         advice,
			Language:       req.Language,
			Timestamp:      s.now().UTC(),
			WeatherSummary: summary,
		},
	}

	rec, err := s.recorder.Save(ctx, domain.HistoryFromExchange(req, advice))
	if err != nil {
		outcome.PersistErr = err
		return outcome, nil
	}
	outcome.Record = &rec

	s.logger.Info("advice generated",
		zap.Int64("history_id", rec.ID),
		zap.String("language", string(req.Language)),
		zap.Int("advice_length", len(advice)))

	return outcome, nil
}

// History returns the most recent advice exchanges
func (s *AdviceService) History(ctx context.Context, limit int) ([]domain.AdviceHistoryRecord, error) {
	return s.recorder.List(ctx, limit)
}

// Health reports history store health
func (s *AdviceService) Health(ctx context.Context) error {
	return s.recorder.Health(ctx)
}
