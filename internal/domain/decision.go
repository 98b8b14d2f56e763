package domain

// Status enumerates the possible terminal outcomes of one pipeline run.
type Status string

const (
	StatusAccepted            Status = "ACCEPTED"
	StatusRejected            Status = "REJECTED"
	StatusAwaitingDocuments   Status = "AWAITING_DOCUMENTS"
	StatusVerificationPending Status = "VERIFICATION_PENDING"
)

// Decision is the (status, reason) pair produced for one application. Exactly
// one decision is produced per pipeline run; the reason is empty on acceptance.
type Decision struct {
	Status Status
	Reason string
}
