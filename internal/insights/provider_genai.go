// internal/insights/provider_genai.go
package insights

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"college-compass/internal/common/errors"
)

// GenAIProvider posts the rendered prompt to a generic text-generation HTTP
// service. One attempt per request: a failed call surfaces immediately with
// no retry, and the reply body is handed back verbatim for schema checking.
type GenAIProvider struct {
	baseURL     string
	apiKey      string
	maxTokens   int
	temperature float64
	client      *http.Client
}

func NewGenAIProvider(baseURL, apiKey string, cfg *Config) *GenAIProvider {
	return &GenAIProvider{
		baseURL:     baseURL,
		apiKey:      apiKey,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
		// No client timeout; the caller's context is the only deadline.
		client: &http.Client{},
	}
}

func (p *GenAIProvider) Name() string {
	return "genai"
}

func (p *GenAIProvider) Generate(ctx context.Context, prompt string) ([]byte, error) {
	requestBody := map[string]interface{}{
		"prompt":      prompt,
		"max_tokens":  p.maxTokens,
		"temperature": p.temperature,
	}

	body, _ := json.Marshal(requestBody)
	req, err := http.NewRequestWithContext(ctx, "POST", p.baseURL+"/api/ai/generate", bytes.NewBuffer(body))
	if err != nil {
		return nil, errors.NewNarrativeTransportError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if p.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.apiKey)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, errors.NewNarrativeTimeoutError()
		}
		return nil, errors.NewNarrativeTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewNarrativeTransportError(fmt.Errorf("status %d", resp.StatusCode))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewNarrativeTransportError(err)
	}

	return raw, nil
}
