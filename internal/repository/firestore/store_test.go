package firestore

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/desertfarm/backend/internal/domain"
)

// Runs against the Firestore emulator only
func newTestStore(t *testing.T) *Store {
	t.Helper()

	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	ctx := context.Background()
	collection := fmt.Sprintf("advice_history_test_%d", time.Now().UnixNano())
	s, err := NewStore(ctx, "desertfarm-test", collection)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestNewStoreRequiresProject(t *testing.T) {
	if _, err := NewStore(context.Background(), "", ""); err == nil {
		t.Fatal("expected error without project id")
	}
}

func TestStoreAllocatesIncreasingIDs(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Health(ctx); err != nil {
		t.Fatalf("health: %v", err)
	}

	late := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	first, err := s.SaveAdviceHistory(ctx, domain.NewAdviceHistory{Query: "first", Language: domain.LanguageArabic, Timestamp: late})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	second, err := s.SaveAdviceHistory(ctx, domain.NewAdviceHistory{Query: "second", Language: domain.LanguageEnglish, Timestamp: late.Add(-time.Minute)})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("ids = %d, %d; want 1, 2", first.ID, second.ID)
	}
	if !second.Timestamp.Equal(late) {
		t.Fatalf("timestamp = %v, want clamped to %v", second.Timestamp, late)
	}

	got, err := s.GetAdviceHistory(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got) != 1 || got[0].Query != "second" {
		t.Fatalf("unexpected history: %+v", got)
	}
}
