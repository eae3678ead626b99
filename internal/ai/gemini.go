package ai

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

// Gemini wraps the Google GenAI client for plain text completions.
// The rest of the service treats it through the TextGenerator
// interface and must work with no generator wired at all.
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini text client.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("ai: Gemini API key is required")
	}
	if model == "" {
		model = "gemini-1.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("ai: failed to create Gemini client: %w", err)
	}

	return &Gemini{client: client, model: model}, nil
}

// Generate returns the model's text completion for a prompt.
func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	result, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("ai: Gemini generation failed: %w", err)
	}
	return result.Text(), nil
}
