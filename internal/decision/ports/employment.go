package ports

import "context"

// EmploymentRecord is the verifier's answer for one applicant. Successful=false
// means the verification service itself was unable to respond, which is
// distinct from a substantive Employed=false result.
type EmploymentRecord struct {
	Successful bool
	Employed   bool
	Message    string
	Employer   string
}

// EmploymentVerifier defines the interface for employment checks, keyed by the
// applicant's email address.
type EmploymentVerifier interface {
	VerifyEmployment(ctx context.Context, email string) (*EmploymentRecord, error)
}
