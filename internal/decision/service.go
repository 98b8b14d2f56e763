package decision

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"lendflow/internal/decision/metrics"
	"lendflow/internal/decision/ports"
	"lendflow/internal/domain"
)

// DefaultMinCreditScore is the minimum bureau score an applicant must meet.
const DefaultMinCreditScore = 650

// ErrNilApplication signals a caller contract violation, not a business
// outcome. Every in-scope failure mode is expressed as a Decision instead.
var ErrNilApplication = errors.New("application is required")

// Collaborators groups the external dependencies of the pipeline. A nil check
// collaborator disables its stage rather than failing it, so callers opt in to
// document, credit, and employment checks independently. The same applies to
// the notifier and auditor on the finalization path.
type Collaborators struct {
	Repository ports.Repository
	Documents  ports.DocumentValidator
	Bureau     ports.CreditBureau
	Employment ports.EmploymentVerifier
	Notifier   ports.Notifier
	Auditor    ports.Auditor
}

// stage is one independent check. A nil result means no issue, proceed; a
// non-nil result is the terminal decision for the run and no later stage runs.
type stage struct {
	tag domain.EventTag
	run func(ctx context.Context, app domain.Application) *domain.Decision
}

// Service runs loan applications through the decision pipeline: field
// validation, document checks, credit score, employment verification, then
// persistence on acceptance. Every exit path goes through the finalizer
// exactly once.
type Service struct {
	collab         Collaborators
	minCreditScore int
	stages         []stage
	finalizer      *Finalizer
	logger         *slog.Logger
	metrics        *metrics.Metrics
}

// Option configures the Service.
type Option func(*Service)

// WithLogger sets a logger for pipeline progress and side-effect failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithMinCreditScore overrides the acceptance threshold.
func WithMinCreditScore(score int) Option {
	return func(s *Service) {
		s.minCreditScore = score
	}
}

// NewService constructs the pipeline. Stage order is fixed; appending a new
// check means appending to the stage list, not touching Process.
func NewService(collab Collaborators, opts ...Option) *Service {
	s := &Service{
		collab:         collab,
		minCreditScore: DefaultMinCreditScore,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.finalizer = NewFinalizer(collab.Notifier, collab.Auditor, s.logger)
	s.stages = []stage{
		{tag: domain.EventBasicValidation, run: s.checkFields},
		{tag: domain.EventDocumentValidation, run: s.checkDocuments},
		{tag: domain.EventCreditScoreCheck, run: s.checkCredit},
		{tag: domain.EventEmploymentVerification, run: s.checkEmployment},
	}
	return s
}

// Process adjudicates a single application. Stages run in fixed order and the
// first one to yield a decision short-circuits the rest. When all stages pass,
// the application is persisted before the accepted decision is finalized.
//
// The returned error covers contract violations and persistence failure only;
// every business failure mode comes back as a Decision.
func (s *Service) Process(ctx context.Context, app *domain.Application) (domain.Decision, error) {
	if app == nil {
		return domain.Decision{}, ErrNilApplication
	}

	runID := uuid.New().String()
	start := time.Now()

	tag := domain.EventFinalApproval
	var result *domain.Decision
	for _, st := range s.stages {
		stageStart := time.Now()
		result = st.run(ctx, *app)
		s.metrics.ObserveStageLatency(string(st.tag), time.Since(stageStart))
		if result != nil {
			tag = st.tag
			break
		}
	}

	if result == nil {
		if s.collab.Repository != nil {
			if err := s.collab.Repository.Save(ctx, *app); err != nil {
				return domain.Decision{}, fmt.Errorf("save application: %w", err)
			}
		}
		result = &domain.Decision{Status: domain.StatusAccepted}
	}

	final := s.finalizer.Finalize(ctx, runID, *app, tag, *result)

	s.metrics.IncrementOutcome(string(final.Status))
	s.metrics.ObserveProcessLatency(time.Since(start))
	if s.logger != nil {
		s.logger.InfoContext(ctx, "application processed",
			"run_id", runID,
			"stage", string(tag),
			"status", string(final.Status),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}

	return final, nil
}
