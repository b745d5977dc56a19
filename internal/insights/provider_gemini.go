// internal/insights/provider_gemini.go
package insights

import (
	"context"
	"fmt"

	"college-compass/internal/common/errors"

	"google.golang.org/genai"
)

// GeminiProvider generates narratives through the official Gemini API. The
// response schema is pushed down to the model so replies arrive as bare JSON
// matching the two-field contract; the client still validates them.
type GeminiProvider struct {
	client      *genai.Client
	model       string
	maxTokens   int
	temperature float64
}

func NewGeminiProvider(ctx context.Context, apiKey, model string, cfg *Config) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiProvider{
		client:      client,
		model:       model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}, nil
}

func (p *GeminiProvider) Name() string {
	return "gemini"
}

func (p *GeminiProvider) Generate(ctx context.Context, prompt string) ([]byte, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	config := &genai.GenerateContentConfig{
		MaxOutputTokens:  int32(p.maxTokens),
		Temperature:      genai.Ptr(float32(p.temperature)),
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"eligibility": {
					Type: genai.TypeString,
					Enum: []string{"Eligible", "Not Eligible"},
				},
				"insights": {
					Type: genai.TypeString,
				},
			},
			Required: []string{"eligibility", "insights"},
		},
	}

	result, err := p.client.Models.GenerateContent(ctx, p.model, contents, config)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, errors.NewNarrativeTimeoutError()
		}
		return nil, errors.NewNarrativeTransportError(err)
	}

	text := result.Text()
	if text == "" {
		return nil, errors.NewNarrativeSchemaViolationError("empty model reply")
	}

	return []byte(text), nil
}
