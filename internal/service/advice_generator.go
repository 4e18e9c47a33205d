package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/desertfarm/backend/internal/domain"
)

// DefaultModel is the generation model used when none is configured
const DefaultModel = "gemini-2.5-flash"

// AdviceGenerator sends composed prompts to the text-generation capability.
// It makes exactly one attempt per call.
type AdviceGenerator struct {
	generator domain.TextGenerator
	model     string
	logger    *zap.Logger
}

// NewAdviceGenerator creates a new advice generator
func NewAdviceGenerator(generator domain.TextGenerator, model string, logger *zap.Logger) *AdviceGenerator {
	if model == "" {
		model = DefaultModel
	}
	return &AdviceGenerator{
		generator: generator,
		model:     model,
		logger:    logger,
	}
}

// Model returns the model identifier sent with every request
func (g *AdviceGenerator) Model() string {
	return g.model
}

// Generate returns the provider's text verbatim, a localized placeholder when
// the provider answered with no text, or a *domain.GenerationError when the
// call itself failed.
func (g *AdviceGenerator) Generate(ctx context.Context, lang domain.Language, prompt Prompt) (string, error) {
	text, err := g.generator.GenerateText(ctx, domain.GenerationRequest{
		Model:             g.model,
		SystemInstruction: prompt.System,
		Turns: []domain.ConversationTurn{
			{Role: domain.RoleUser, Content: prompt.User},
		},
	})
	if err != nil {
		g.logger.Error("generation provider call failed",
			zap.String("model", g.model),
			zap.String("language", string(lang)),
			zap.Error(err))
		return "", &domain.GenerationError{Language: lang}
	}

	if text == "" {
		g.logger.Warn("generation provider returned empty text, using fallback",
			zap.String("model", g.model),
			zap.String("language", string(lang)))
		return FallbackAdvice(lang), nil
	}

	return text, nil
}

// FallbackAdvice is the placeholder used when generation yields no text
func FallbackAdvice(lang domain.Language) string {
	switch lang {
	case domain.LanguageEnglish:
		return "Sorry, I couldn't generate advice. Please try again."
	case domain.LanguageArabic:
		return "عذراً، لم أتمكن من توليد نصيحة. حاول مرة أخرى."
	default:
		panic(domain.UnsupportedLanguage(lang))
	}
}
