// Package generate produces UI component code through an LLM and shapes
// the prompts the healing loop feeds back into it.
package generate

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"uismith/internal/logging"
)

// Generator is the LLM completion capability. Implementations must be
// safe for concurrent use.
type Generator interface {
	Complete(ctx context.Context, prompt string) (string, error)
	CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// GenAIClient implements Generator over the Gemini API.
type GenAIClient struct {
	client *genai.Client
	model  string
}

// NewGenAIClient creates a Gemini-backed generator.
func NewGenAIClient(ctx context.Context, apiKey, model string) (*GenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GenAI API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}

	return &GenAIClient{client: client, model: model}, nil
}

// Complete implements Generator.
func (c *GenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, prompt, nil)
}

// CompleteWithSystem implements Generator.
func (c *GenAIClient) CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
	}
	return c.generate(ctx, userPrompt, cfg)
}

func (c *GenAIClient) generate(ctx context.Context, prompt string, cfg *genai.GenerateContentConfig) (string, error) {
	timer := logging.StartTimer(logging.CategoryGenerate, "GenAIClient.generate")
	defer timer.Stop()

	result, err := c.client.Models.GenerateContent(ctx, c.model,
		genai.Text(prompt), cfg)
	if err != nil {
		logging.Get(logging.CategoryGenerate).Error("generation failed: %v", err)
		return "", fmt.Errorf("GenAI generation failed: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model %s", c.model)
	}
	logging.GenerateDebug("model %s returned %d bytes", c.model, len(text))
	return text, nil
}
