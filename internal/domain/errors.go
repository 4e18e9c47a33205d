package domain

import (
	"errors"
	"strings"
)

var (
	// ErrGenerationFailed matches every GenerationError via errors.Is
	ErrGenerationFailed = errors.New("advice generation failed")

	// ErrInvalidLimit is returned for history limits outside [1,100]
	ErrInvalidLimit = errors.New("invalid limit. Must be between 1 and 100")
)

// FieldViolation describes one invalid field of an inbound request
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every violated field of a request
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return "invalid request data: " + strings.Join(parts, "; ")
}

// GenerationError is the single caller-facing failure of the advice
// generator. Its message is localized and never carries provider detail.
type GenerationError struct {
	Language Language
}

func (e *GenerationError) Error() string {
	switch e.Language {
	case LanguageArabic:
		return "خطأ في توليد النصيحة"
	case LanguageEnglish:
		return "Failed to generate advice"
	default:
		panic(UnsupportedLanguage(e.Language))
	}
}

// Is lets errors.Is(err, ErrGenerationFailed) match
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}
