package domain

import "time"

// EventTag identifies the pipeline stage (or final approval) that produced an
// audit record.
type EventTag string

const (
	EventBasicValidation        EventTag = "BASIC_VALIDATION"
	EventDocumentValidation     EventTag = "DOCUMENT_VALIDATION"
	EventCreditScoreCheck       EventTag = "CREDIT_SCORE_CHECK"
	EventEmploymentVerification EventTag = "EMPLOYMENT_VERIFICATION"
	EventFinalApproval          EventTag = "FINAL_APPROVAL"
)

// AuditRecord captures the outcome of one pipeline run for compliance. It is
// created exactly once per run, immediately before the decision is returned.
type AuditRecord struct {
	RunID          string
	ApplicantEmail string
	Event          EventTag
	Outcome        Status
	Details        string
	CreatedAt      time.Time
}
