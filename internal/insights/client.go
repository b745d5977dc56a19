// internal/insights/client.go
package insights

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"strings"

	"college-compass/internal/common/errors"
	"college-compass/internal/common/logger"
	"college-compass/internal/common/validation"
)

// responseSchema is the fixed contract every narrative reply must satisfy.
// The eligibility field is constrained to the two literal verdicts; anything
// else is a contract violation.
const responseSchema = `{
  "type": "object",
  "required": ["eligibility", "insights"],
  "additionalProperties": false,
  "properties": {
    "eligibility": {"type": "string", "enum": ["Eligible", "Not Eligible"]},
    "insights": {"type": "string", "minLength": 1}
  }
}`

// Provider dispatches a rendered prompt to an external text-generation
// service and returns the raw reply bytes. It performs no schema checks.
type Provider interface {
	Generate(ctx context.Context, prompt string) ([]byte, error)
	Name() string
}

// Client renders prompts, dispatches them through a Provider, and enforces
// the two-field reply contract. It never decides eligibility itself.
type Client struct {
	provider Provider
	logger   logger.Logger
}

func NewClient(provider Provider, log logger.Logger) *Client {
	return &Client{
		provider: provider,
		logger:   log.WithFields(map[string]interface{}{"provider": provider.Name()}),
	}
}

// ProviderName reports which backend the client dispatches to.
func (c *Client) ProviderName() string {
	return c.provider.Name()
}

// Generate runs one request/response cycle. Transport failures, timeouts,
// and schema-non-conformant replies all surface as a StandardError whose
// user message is the single generic failure string; the distinguishing
// detail goes to the log only.
func (c *Client) Generate(ctx context.Context, req *InsightRequest) (*InsightResponse, error) {
	prompt := renderPrompt(req)

	raw, err := c.provider.Generate(ctx, prompt)
	if err != nil {
		se := c.classifyTransport(ctx, err)
		c.logger.Error("narrative generation failed", map[string]interface{}{
			"errorCode": se.Code,
			"detail":    se.Details,
		})
		return nil, se
	}

	resp, err := c.parseResponse(raw)
	if err != nil {
		if se, ok := errors.AsStandardError(err); ok {
			c.logger.Error("narrative reply rejected", map[string]interface{}{
				"errorCode": se.Code,
				"detail":    se.Details,
			})
		}
		return nil, err
	}

	c.logger.Info("narrative generated", map[string]interface{}{
		"eligibility":   resp.Eligibility,
		"insightsBytes": len(resp.Insights),
	})

	return resp, nil
}

func (c *Client) classifyTransport(ctx context.Context, err error) *errors.StandardError {
	if se, ok := errors.AsStandardError(err); ok {
		return se
	}
	if stderrors.Is(err, context.DeadlineExceeded) || ctx.Err() == context.DeadlineExceeded {
		return errors.NewNarrativeTimeoutError()
	}
	return errors.NewNarrativeTransportError(err)
}

func (c *Client) parseResponse(raw []byte) (*InsightResponse, error) {
	violations, err := validation.CheckDocument(responseSchema, raw)
	if err != nil {
		return nil, errors.NewNarrativeSchemaViolationError(err.Error())
	}
	if len(violations) > 0 {
		return nil, errors.NewNarrativeSchemaViolationError(strings.Join(violations, "; "))
	}

	var resp InsightResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, errors.NewNarrativeSchemaViolationError(err.Error())
	}

	return &resp, nil
}
