package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestGenerationErrorMessages(t *testing.T) {
	tests := []struct {
		lang Language
		want string
	}{
		{LanguageEnglish, "Failed to generate advice"},
		{LanguageArabic, "خطأ في توليد النصيحة"},
	}
	for _, tt := range tests {
		err := error(&GenerationError{Language: tt.lang})
		if err.Error() != tt.want {
			t.Errorf("%s: Error() = %q, want %q", tt.lang, err.Error(), tt.want)
		}
		if !errors.Is(err, ErrGenerationFailed) {
			t.Errorf("%s: expected errors.Is(ErrGenerationFailed)", tt.lang)
		}

		wrapped := fmt.Errorf("pipeline: %w", err)
		var genErr *GenerationError
		if !errors.As(wrapped, &genErr) || genErr.Language != tt.lang {
			t.Errorf("%s: errors.As did not recover the GenerationError", tt.lang)
		}
	}
}

func TestValidationErrorListsEveryField(t *testing.T) {
	err := &ValidationError{Violations: []FieldViolation{
		{Field: "query", Message: "Required"},
		{Field: "weather.humidity", Message: "Expected number"},
	}}
	want := "invalid request data: query: Required; weather.humidity: Expected number"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestParseLanguage(t *testing.T) {
	for _, s := range []string{"en", "ar"} {
		if l, err := ParseLanguage(s); err != nil || string(l) != s {
			t.Errorf("ParseLanguage(%q) = %q, %v", s, l, err)
		}
	}
	for _, s := range []string{"", "EN", "fr"} {
		if _, err := ParseLanguage(s); err == nil {
			t.Errorf("ParseLanguage(%q) expected error", s)
		}
	}
}
