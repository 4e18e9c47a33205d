package service

import (
	"github.com/desertfarm/backend/internal/domain"
)

// AdviceRepository is re-exported from domain for convenience
type AdviceRepository = domain.AdviceRepository

// TextGenerator is re-exported from domain for convenience
type TextGenerator = domain.TextGenerator
