package decision

import (
	"context"
	"fmt"
	"strings"

	"lendflow/internal/domain"
)

// checkFields validates the required scalar fields. All accumulated problems
// are reported in one rejection rather than first-error-wins.
func (s *Service) checkFields(_ context.Context, app domain.Application) *domain.Decision {
	var errs []string
	if strings.TrimSpace(app.ApplicantName) == "" {
		errs = append(errs, "Applicant name is required")
	}
	if strings.TrimSpace(app.Email) == "" {
		errs = append(errs, "Email is required")
	}
	if strings.TrimSpace(app.Phone) == "" {
		errs = append(errs, "Phone number is required")
	}
	if app.LoanAmount <= 0 {
		errs = append(errs, "Loan amount must be greater than zero")
	}
	if strings.TrimSpace(app.LoanPurpose) == "" {
		errs = append(errs, "Loan purpose is required")
	}
	if len(errs) == 0 {
		return nil
	}
	return &domain.Decision{Status: domain.StatusRejected, Reason: strings.Join(errs, ", ")}
}

// checkDocuments delegates to the document validator. The stage is not
// applicable when no validator is configured or the application carries no
// documents; callers who opt out of document checking keep their behavior.
func (s *Service) checkDocuments(ctx context.Context, app domain.Application) *domain.Decision {
	if s.collab.Documents == nil || len(app.Documents) == 0 {
		return nil
	}

	result, err := s.collab.Documents.ValidateDocuments(ctx, app.Documents)
	if err != nil {
		if s.logger != nil {
			s.logger.ErrorContext(ctx, "document validation call failed", "error", err)
		}
		return &domain.Decision{
			Status: domain.StatusRejected,
			Reason: "Document validation failed: " + err.Error(),
		}
	}

	if result.Valid {
		return nil
	}
	// An affirmative missing list means the submission is incomplete and
	// recoverable; anything else is present-but-invalid.
	if len(result.MissingDocuments) > 0 {
		return &domain.Decision{Status: domain.StatusAwaitingDocuments, Reason: result.Message}
	}
	return &domain.Decision{Status: domain.StatusRejected, Reason: result.Message}
}

// checkCredit delegates to the credit bureau. A bureau-reported failure is a
// hard reject, not a pending state; checkEmployment handles the same situation
// the opposite way.
func (s *Service) checkCredit(ctx context.Context, app domain.Application) *domain.Decision {
	if s.collab.Bureau == nil {
		return nil
	}

	report, err := s.collab.Bureau.GetCreditScore(ctx, app.Phone)
	if err != nil {
		if s.logger != nil {
			s.logger.ErrorContext(ctx, "credit bureau call failed", "error", err)
		}
		return &domain.Decision{
			Status: domain.StatusRejected,
			Reason: "Credit bureau unavailable: " + err.Error(),
		}
	}

	if !report.Successful {
		return &domain.Decision{Status: domain.StatusRejected, Reason: report.Message}
	}
	if report.Score < s.minCreditScore {
		return &domain.Decision{
			Status: domain.StatusRejected,
			Reason: fmt.Sprintf("Credit score %d is below minimum required score of %d", report.Score, s.minCreditScore),
		}
	}
	return nil
}

// checkEmployment delegates to the employment verifier. An unavailable
// verifier maps to VERIFICATION_PENDING so the applicant can be retried later;
// only a substantive not-employed result rejects.
func (s *Service) checkEmployment(ctx context.Context, app domain.Application) *domain.Decision {
	if s.collab.Employment == nil {
		return nil
	}

	record, err := s.collab.Employment.VerifyEmployment(ctx, app.Email)
	if err != nil {
		if s.logger != nil {
			s.logger.ErrorContext(ctx, "employment verification call failed", "error", err)
		}
		return &domain.Decision{
			Status: domain.StatusVerificationPending,
			Reason: "Employment verification unavailable: " + err.Error(),
		}
	}

	if !record.Successful {
		return &domain.Decision{Status: domain.StatusVerificationPending, Reason: record.Message}
	}
	if !record.Employed {
		return &domain.Decision{
			Status: domain.StatusRejected,
			Reason: "Employment verification failed: " + record.Message,
		}
	}
	return nil
}
