// internal/insights/service.go
package insights

import (
	"context"
	"time"

	"college-compass/internal/catalog"
	"college-compass/internal/common/errors"
	"college-compass/internal/common/logger"
	"college-compass/internal/common/metrics"
	"college-compass/internal/common/observability"
	"college-compass/internal/eligibility"
)

// Service is the presentation boundary of the insight pipeline: validate,
// build, dispatch, and collapse every failure into one of the two outcomes
// the UI understands.
type Service struct {
	catalog *catalog.Store
	client  *Client
	config  *Config
	obs     *observability.Observability
	logger  logger.Logger
}

func NewService(store *catalog.Store, client *Client, cfg *Config, obs *observability.Observability, log logger.Logger) *Service {
	return &Service{
		catalog: store,
		client:  client,
		config:  cfg,
		obs:     obs,
		logger:  log.WithFields(map[string]interface{}{"component": "insights-service"}),
	}
}

// Prepared is a validated submission ready for dispatch. The local verdict
// is advisory: it parameterizes the prompt and is logged against the model's
// verdict, but the model's schema-constrained verdict is what the user sees.
type Prepared struct {
	Request      *InsightRequest
	LocalVerdict eligibility.Verdict
}

// Prepare resolves catalog snapshots and runs the request builder. A nil
// error guarantees the submission may be dispatched.
func (s *Service) Prepare(input SubmitInput) (*Prepared, error) {
	college, course, err := s.catalog.Course(input.CollegeID, input.CourseID)
	if err != nil {
		return nil, err
	}

	req, err := BuildRequest(input.Form, college, course, input.Category)
	if err != nil {
		return nil, err
	}

	return &Prepared{
		Request:      req,
		LocalVerdict: eligibility.Evaluate(req.Cutoff, req.CourseCutoff),
	}, nil
}

// Generate dispatches a prepared submission and shapes the outcome.
func (s *Service) Generate(ctx context.Context, prep *Prepared) *SubmitResult {
	start := time.Now()

	genCtx, cancel := context.WithTimeout(ctx, s.config.Timeout)
	defer cancel()

	resp, err := s.client.Generate(genCtx, prep.Request)

	metrics.InsightGenerationDuration.WithLabelValues(s.client.ProviderName()).
		Observe(time.Since(start).Seconds())

	if err != nil {
		s.recordOutcome(ctx, "failed", time.Since(start), err)
		return failureResult(err)
	}

	if resp.Eligibility != prep.LocalVerdict {
		// The model is the authoritative verdict source; a divergence from
		// the local rule is a diagnostic signal, not an error.
		s.logger.Warn("verdict divergence", map[string]interface{}{
			"localVerdict": prep.LocalVerdict,
			"modelVerdict": resp.Eligibility,
			"course":       prep.Request.CourseName,
			"category":     prep.Request.Category,
		})
	}

	s.recordOutcome(ctx, "success", time.Since(start), nil)

	return &SubmitResult{
		Success:     true,
		Eligibility: resp.Eligibility,
		Insights:    resp.Insights,
	}
}

// Submit runs the full pipeline for one submission. Validation failures
// carry per-field detail; generation failures carry the generic message.
func (s *Service) Submit(ctx context.Context, input SubmitInput) *SubmitResult {
	prep, err := s.Prepare(input)
	if err != nil {
		s.recordOutcome(ctx, "rejected", 0, err)
		return failureResult(err)
	}
	return s.Generate(ctx, prep)
}

func (s *Service) recordOutcome(ctx context.Context, outcome string, elapsed time.Duration, err error) {
	metrics.InsightRequestsTotal.WithLabelValues(outcome).Inc()
	if err != nil {
		if se, ok := errors.AsStandardError(err); ok {
			metrics.InsightFailuresTotal.WithLabelValues(string(se.Code)).Inc()
		}
	}
	s.obs.RecordSubmission(ctx, outcome)
	if elapsed > 0 {
		s.obs.RecordSubmissionDuration(ctx, elapsed, outcome)
	}
}

func failureResult(err error) *SubmitResult {
	if se, ok := errors.AsStandardError(err); ok {
		return &SubmitResult{
			Success:     false,
			Error:       se.UserMessage(),
			FieldErrors: se.FieldErrors,
		}
	}
	return &SubmitResult{
		Success: false,
		Error:   errors.GenericGenerationFailure,
	}
}
