package service

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/desertfarm/backend/internal/domain"
)

// GeminiClient implements domain.TextGenerator on the Gemini Developer API
type GeminiClient struct {
	client *genai.Client
}

// NewGeminiClient creates a Gemini client authenticated with an API key
func NewGeminiClient(ctx context.Context, apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: api key is required")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: failed to create client: %w", err)
	}

	return &GeminiClient{client: client}, nil
}

// GenerateText sends the system instruction as role-level configuration and
// the turns as conversation contents.
func (c *GeminiClient) GenerateText(ctx context.Context, req domain.GenerationRequest) (string, error) {
	contents := make([]*genai.Content, 0, len(req.Turns))
	for _, turn := range req.Turns {
		contents = append(contents, genai.NewContentFromText(turn.Content, geminiRole(turn.Role)))
	}

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(req.SystemInstruction, genai.RoleUser),
	}

	resp, err := c.client.Models.GenerateContent(ctx, req.Model, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("gemini: generate content: %w", err)
	}
	if resp == nil {
		return "", nil
	}

	return resp.Text(), nil
}

func geminiRole(role domain.Role) genai.Role {
	if role == domain.RoleModel {
		return genai.RoleModel
	}
	return genai.RoleUser
}
