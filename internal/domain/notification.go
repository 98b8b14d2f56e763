package domain

// Category classifies an outbound notification. Categories mirror decision
// statuses so downstream delivery can pick channel and template per outcome.
type Category string

const (
	CategoryApproval            Category = "APPROVAL"
	CategoryRejection           Category = "REJECTION"
	CategoryAwaitingDocuments   Category = "AWAITING_DOCUMENTS"
	CategoryVerificationPending Category = "VERIFICATION_PENDING"
)

// NotificationRequest is the applicant-facing message built for one pipeline
// run. Created exactly once per run.
type NotificationRequest struct {
	RecipientEmail string
	Category       Category
	Subject        string
	Body           string
}
