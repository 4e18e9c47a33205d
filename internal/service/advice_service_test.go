package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/desertfarm/backend/internal/domain"
	"github.com/desertfarm/backend/internal/repository/memory"
)

func newTestAdviceService(gen domain.TextGenerator, repo domain.AdviceRepository) *AdviceService {
	logger := zap.NewNop()
	return NewAdviceService(
		NewAdviceGenerator(gen, "", logger),
		NewAdviceRecorder(repo),
		logger,
	)
}

func TestGenerateAdviceEnglish(t *testing.T) {
	gen := &captureGenerator{reply: "Irrigate at dawn."}
	store := memory.NewStore()
	svc := newTestAdviceService(gen, store)

	req := domain.AdviceRequest{
		Query:    "How often should I water date palms?",
		Language: domain.LanguageEnglish,
		Weather:  sampleReading(),
	}

	before := time.Now().UTC()
	out, err := svc.GenerateAdvice(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Result.Advice != "Irrigate at dawn." {
		t.Errorf("advice = %q", out.Result.Advice)
	}
	if out.Result.WeatherSummary != "38°C, 22% humidity" {
		t.Errorf("summary = %q", out.Result.WeatherSummary)
	}
	if out.Result.Language != domain.LanguageEnglish {
		t.Errorf("language = %q", out.Result.Language)
	}
	if out.Result.Timestamp.Before(before) {
		t.Errorf("timestamp %v predates the call", out.Result.Timestamp)
	}
	if out.PersistErr != nil || out.Record == nil {
		t.Fatalf("expected stored record, got err=%v", out.PersistErr)
	}

	history, err := svc.History(context.Background(), 1)
	if err != nil {
		t.Fatalf("History: %v", err)
	}
	if len(history) != 1 || history[0].Query != req.Query || history[0].Advice != "Irrigate at dawn." {
		t.Fatalf("unexpected history: %+v", history)
	}
	if history[0].Temperature != 38.2 || history[0].LocationName == nil {
		t.Errorf("weather snapshot not recorded: %+v", history[0])
	}
}

func TestGenerateAdviceArabicUsesArabicSystemInstruction(t *testing.T) {
	gen := &captureGenerator{reply: "اسقِ النخيل صباحاً."}
	svc := newTestAdviceService(gen, memory.NewStore())

	out, err := svc.GenerateAdvice(context.Background(), domain.AdviceRequest{
		Query:    "متى أزرع الطماطم؟",
		Language: domain.LanguageArabic,
		Weather:  sampleReading(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if out.Result.WeatherSummary != "38°C، رطوبة 22%" {
		t.Errorf("summary = %q", out.Result.WeatherSummary)
	}
	if got := gen.last().SystemInstruction; got != SystemPrompt(domain.LanguageArabic) {
		t.Errorf("generator did not receive the Arabic system instruction: %q", got)
	}
}

func TestGenerateAdvicePersistenceFailureIsNonFatal(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	svc := newTestAdviceService(&captureGenerator{reply: "ok"}, &failingRepo{})
	svc.logger = zap.New(core)

	out, err := svc.GenerateAdvice(context.Background(), domain.AdviceRequest{
		Query:    "q",
		Language: domain.LanguageEnglish,
		Weather:  sampleReading(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Result.Advice != "ok" {
		t.Errorf("advice = %q", out.Result.Advice)
	}
	if !errors.Is(out.PersistErr, errStoreDown) {
		t.Errorf("PersistErr = %v, want errStoreDown", out.PersistErr)
	}
	if out.Record != nil {
		t.Errorf("expected no record on persistence failure")
	}
	if logs.Len() != 0 {
		t.Errorf("persistence failure is reported by the caller, got %d service warnings", logs.Len())
	}
}

func TestGenerateAdviceGenerationFailureSkipsHistory(t *testing.T) {
	store := memory.NewStore()
	svc := newTestAdviceService(&captureGenerator{err: errors.New("boom")}, store)

	_, err := svc.GenerateAdvice(context.Background(), domain.AdviceRequest{
		Query:    "q",
		Language: domain.LanguageEnglish,
		Weather:  sampleReading(),
	})
	if !errors.Is(err, domain.ErrGenerationFailed) {
		t.Fatalf("error = %v, want ErrGenerationFailed", err)
	}
	if store.Len() != 0 {
		t.Fatalf("history written for failed generation")
	}
}
