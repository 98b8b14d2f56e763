package decision

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"lendflow/internal/decision/ports"
	"lendflow/internal/domain"
)

// successDetail is recorded on accepted runs, which carry no decision reason.
const successDetail = "Processing successful"

// Finalizer sends the applicant notification and writes the audit record for
// every outcome. It is the single exit point of the pipeline: each run passes
// through it exactly once, success or failure.
type Finalizer struct {
	notifier ports.Notifier
	auditor  ports.Auditor
	logger   *slog.Logger
}

func NewFinalizer(notifier ports.Notifier, auditor ports.Auditor, logger *slog.Logger) *Finalizer {
	return &Finalizer{notifier: notifier, auditor: auditor, logger: logger}
}

// Finalize dispatches both side effects and returns the decision unchanged.
// Notification and audit are best-effort: a failed dispatch is logged, never
// surfaced, because the decision itself already stands.
func (f *Finalizer) Finalize(ctx context.Context, runID string, app domain.Application, tag domain.EventTag, d domain.Decision) domain.Decision {
	if f.notifier != nil {
		req := buildNotification(app, d)
		if err := f.notifier.SendNotification(ctx, req); err != nil && f.logger != nil {
			f.logger.ErrorContext(ctx, "notification dispatch failed",
				"run_id", runID,
				"recipient", app.Email,
				"error", err,
			)
		}
	}

	if f.auditor != nil {
		record := domain.AuditRecord{
			RunID:          runID,
			ApplicantEmail: app.Email,
			Event:          tag,
			Outcome:        d.Status,
			Details:        d.Reason,
			CreatedAt:      time.Now(),
		}
		if record.Details == "" {
			record.Details = successDetail
		}
		if err := f.auditor.LogEvent(ctx, record); err != nil && f.logger != nil {
			f.logger.ErrorContext(ctx, "audit record dispatch failed",
				"run_id", runID,
				"event", string(tag),
				"error", err,
			)
		}
	}

	return d
}

// buildNotification selects the fixed message template for the decision's
// status and addresses it to the applicant.
func buildNotification(app domain.Application, d domain.Decision) domain.NotificationRequest {
	req := domain.NotificationRequest{RecipientEmail: app.Email}
	switch d.Status {
	case domain.StatusAccepted:
		req.Category = domain.CategoryApproval
		req.Subject = "Loan Application Approved"
		req.Body = fmt.Sprintf("Congratulations! Your loan application for %.2f has been approved.", app.LoanAmount)
	case domain.StatusRejected:
		req.Category = domain.CategoryRejection
		req.Subject = "Loan Application Update"
		req.Body = fmt.Sprintf("We are unable to approve your loan application. Reason: %s", d.Reason)
	case domain.StatusAwaitingDocuments:
		req.Category = domain.CategoryAwaitingDocuments
		req.Subject = "Documents Required"
		req.Body = fmt.Sprintf("Your loan application is on hold until we receive the required documents. %s", d.Reason)
	case domain.StatusVerificationPending:
		req.Category = domain.CategoryVerificationPending
		req.Subject = "Verification In Progress"
		req.Body = fmt.Sprintf("Your loan application could not be verified yet. %s", d.Reason)
	}
	return req
}
