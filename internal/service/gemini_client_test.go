package service

import (
	"context"
	"testing"

	"google.golang.org/genai"

	"github.com/desertfarm/backend/internal/domain"
)

func TestNewGeminiClientRequiresKey(t *testing.T) {
	if _, err := NewGeminiClient(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty api key")
	}
}

func TestGeminiRole(t *testing.T) {
	if got := geminiRole(domain.RoleModel); got != genai.RoleModel {
		t.Errorf("geminiRole(model) = %q", got)
	}
	if got := geminiRole(domain.RoleUser); got != genai.RoleUser {
		t.Errorf("geminiRole(user) = %q", got)
	}
}
