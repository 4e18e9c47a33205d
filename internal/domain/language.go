package domain

import "fmt"

// Language is the locale an advice exchange is conducted in
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"
)

// Languages lists every supported locale
var Languages = []Language{LanguageEnglish, LanguageArabic}

// Valid reports whether l is a supported locale
func (l Language) Valid() bool {
	switch l {
	case LanguageEnglish, LanguageArabic:
		return true
	}
	return false
}

// ParseLanguage converts a raw value into a supported Language
func ParseLanguage(s string) (Language, error) {
	l := Language(s)
	if !l.Valid() {
		return "", fmt.Errorf("unsupported language %q", s)
	}
	return l, nil
}

// UnsupportedLanguage is raised by exhaustive language switches when a value
// slipped past validation.
func UnsupportedLanguage(l Language) string {
	return fmt.Sprintf("domain: unsupported language %q", string(l))
}
