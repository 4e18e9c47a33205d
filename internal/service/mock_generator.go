package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertfarm/backend/internal/domain"
)

// MockGenerator implements domain.TextGenerator without any network access.
// It is used in demo mode when no Gemini API key is configured.
type MockGenerator struct{}

// NewMockGenerator creates a new mock generator
func NewMockGenerator() *MockGenerator {
	return &MockGenerator{}
}

// GenerateText returns canned advice in the language of the system instruction
func (m *MockGenerator) GenerateText(ctx context.Context, req domain.GenerationRequest) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	conditions := ""
	if len(req.Turns) > 0 {
		conditions, _, _ = strings.Cut(req.Turns[len(req.Turns)-1].Content, "\n\n")
	}

	if req.SystemInstruction == SystemPrompt(domain.LanguageArabic) {
		return fmt.Sprintf("**نصيحة تجريبية**\n\n%s\n\nاسقِ النباتات في الصباح الباكر أو بعد الغروب لتقليل التبخر، واستخدم الري بالتنقيط والتغطية العضوية للحفاظ على رطوبة التربة.", conditions), nil
	}
	return fmt.Sprintf("**Demo advice**\n\n%s\n\nWater early in the morning or after sunset to limit evaporation, and use drip irrigation with organic mulch to keep soil moisture steady.", conditions), nil
}
