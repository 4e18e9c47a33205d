package domain

import "context"

// AdviceRepository defines the interface for advice history persistence
// This follows the Dependency Inversion Principle - domain defines the interface
type AdviceRepository interface {
	// SaveAdviceHistory appends a record and returns it with id and timestamp set
	SaveAdviceHistory(ctx context.Context, rec NewAdviceHistory) (AdviceHistoryRecord, error)

	// GetAdviceHistory returns at most limit records, most recent first
	GetAdviceHistory(ctx context.Context, limit int) ([]AdviceHistoryRecord, error)

	// Health checks store connectivity
	Health(ctx context.Context) error
}

// Role identifies the author of a conversation turn
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// ConversationTurn is a single message sent to the generation provider
type ConversationTurn struct {
	Role    Role
	Content string
}

// GenerationRequest is what a TextGenerator receives: role-level
// instructions kept apart from the conversational turns.
type GenerationRequest struct {
	Model             string
	SystemInstruction string
	Turns             []ConversationTurn
}

// TextGenerator is the text-generation capability the advice pipeline
// depends on. An empty string with a nil error means the provider answered
// without content.
type TextGenerator interface {
	GenerateText(ctx context.Context, req GenerationRequest) (string, error)
}
