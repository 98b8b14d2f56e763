package ports

import "context"

// CreditReport is the bureau's answer for one applicant (port model, not a
// wire model). Successful=false means the bureau could not produce a score.
type CreditReport struct {
	Successful bool
	Score      int
	Message    string
}

// CreditBureau defines the interface for credit score lookups. Lookups are
// keyed by the applicant's phone number.
type CreditBureau interface {
	GetCreditScore(ctx context.Context, phone string) (*CreditReport, error)
}
