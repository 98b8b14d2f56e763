package decision

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lendflow/internal/decision/ports"
	"lendflow/internal/domain"
)

func TestCheckFields(t *testing.T) {
	svc := NewService(Collaborators{})

	tests := []struct {
		name    string
		mutate  func(*domain.Application)
		wantErr string
	}{
		{name: "valid application passes", mutate: func(*domain.Application) {}},
		{
			name:    "blank name",
			mutate:  func(a *domain.Application) { a.ApplicantName = "   " },
			wantErr: "Applicant name is required",
		},
		{
			name:    "blank email",
			mutate:  func(a *domain.Application) { a.Email = "" },
			wantErr: "Email is required",
		},
		{
			name:    "blank phone",
			mutate:  func(a *domain.Application) { a.Phone = "\t" },
			wantErr: "Phone number is required",
		},
		{
			name:    "zero amount",
			mutate:  func(a *domain.Application) { a.LoanAmount = 0 },
			wantErr: "Loan amount must be greater than zero",
		},
		{
			name:    "negative amount",
			mutate:  func(a *domain.Application) { a.LoanAmount = -500 },
			wantErr: "Loan amount must be greater than zero",
		},
		{
			name:    "blank purpose",
			mutate:  func(a *domain.Application) { a.LoanPurpose = " " },
			wantErr: "Loan purpose is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := validApplication()
			tt.mutate(app)

			result := svc.checkFields(context.Background(), *app)
			if tt.wantErr == "" {
				assert.Nil(t, result)
				return
			}
			require.NotNil(t, result)
			assert.Equal(t, domain.StatusRejected, result.Status)
			assert.Contains(t, result.Reason, tt.wantErr)
		})
	}
}

func TestCheckFields_AccumulatesAllProblems(t *testing.T) {
	svc := NewService(Collaborators{})

	result := svc.checkFields(context.Background(), domain.Application{})
	require.NotNil(t, result)
	assert.Contains(t, result.Reason, "Applicant name is required")
	assert.Contains(t, result.Reason, "Email is required")
	assert.Contains(t, result.Reason, "Phone number is required")
	assert.Contains(t, result.Reason, "Loan amount must be greater than zero")
	assert.Contains(t, result.Reason, "Loan purpose is required")
}

func TestCheckDocuments_NotApplicableWithoutValidatorOrDocuments(t *testing.T) {
	docs := &stubDocs{}

	// No validator configured.
	svc := NewService(Collaborators{})
	app := validApplication()
	app.Documents = []domain.Document{{Type: domain.DocumentIDProof, FileRef: "id.pdf"}}
	assert.Nil(t, svc.checkDocuments(context.Background(), *app))

	// Validator configured but no documents attached.
	svc = NewService(Collaborators{Documents: docs})
	assert.Nil(t, svc.checkDocuments(context.Background(), *validApplication()))
	assert.Zero(t, docs.calls)
}

func TestCheckDocuments_Policy(t *testing.T) {
	app := validApplication()
	app.Documents = []domain.Document{{Type: domain.DocumentIDProof, FileRef: "id.pdf"}}

	tests := []struct {
		name       string
		result     *ports.DocumentResult
		err        error
		wantStatus domain.Status
		wantNil    bool
	}{
		{
			name:    "valid set proceeds",
			result:  &ports.DocumentResult{Valid: true},
			wantNil: true,
		},
		{
			name: "missing documents awaits resubmission",
			result: &ports.DocumentResult{
				Valid:            false,
				Message:          "Missing required documents",
				MissingDocuments: []string{"INCOME_PROOF"},
			},
			wantStatus: domain.StatusAwaitingDocuments,
		},
		{
			name: "present but invalid rejects",
			result: &ports.DocumentResult{
				Valid:   false,
				Message: "ID proof expired",
			},
			wantStatus: domain.StatusRejected,
		},
		{
			name:       "validator unreachable rejects",
			err:        errors.New("dial tcp: connection refused"),
			wantStatus: domain.StatusRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(Collaborators{Documents: &stubDocs{result: tt.result, err: tt.err}})

			result := svc.checkDocuments(context.Background(), *app)
			if tt.wantNil {
				assert.Nil(t, result)
				return
			}
			require.NotNil(t, result)
			assert.Equal(t, tt.wantStatus, result.Status)
		})
	}
}

func TestCheckCredit_Policy(t *testing.T) {
	tests := []struct {
		name       string
		report     *ports.CreditReport
		err        error
		wantNil    bool
		wantStatus domain.Status
		wantReason string
	}{
		{
			name:    "score at threshold proceeds",
			report:  &ports.CreditReport{Successful: true, Score: 650},
			wantNil: true,
		},
		{
			name:       "score below threshold rejects",
			report:     &ports.CreditReport{Successful: true, Score: 649},
			wantStatus: domain.StatusRejected,
			wantReason: "Credit score 649 is below minimum required score of 650",
		},
		{
			name:       "bureau-reported failure is a hard reject",
			report:     &ports.CreditReport{Successful: false, Message: "No record for subscriber"},
			wantStatus: domain.StatusRejected,
			wantReason: "No record for subscriber",
		},
		{
			name:       "bureau unreachable is a hard reject",
			err:        errors.New("dial tcp: i/o timeout"),
			wantStatus: domain.StatusRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(Collaborators{Bureau: &stubBureau{report: tt.report, err: tt.err}})

			result := svc.checkCredit(context.Background(), *validApplication())
			if tt.wantNil {
				assert.Nil(t, result)
				return
			}
			require.NotNil(t, result)
			assert.Equal(t, tt.wantStatus, result.Status)
			if tt.wantReason != "" {
				assert.Equal(t, tt.wantReason, result.Reason)
			}
		})
	}
}

func TestCheckEmployment_Policy(t *testing.T) {
	tests := []struct {
		name       string
		record     *ports.EmploymentRecord
		err        error
		wantNil    bool
		wantStatus domain.Status
		wantReason string
	}{
		{
			name:    "employed proceeds",
			record:  &ports.EmploymentRecord{Successful: true, Employed: true, Employer: "Acme Corp"},
			wantNil: true,
		},
		{
			name:       "verifier-reported failure is pending, not rejected",
			record:     &ports.EmploymentRecord{Successful: false, Message: "HR system down"},
			wantStatus: domain.StatusVerificationPending,
			wantReason: "HR system down",
		},
		{
			name:       "not employed rejects with prefixed reason",
			record:     &ports.EmploymentRecord{Successful: true, Employed: false, Message: "No active contract"},
			wantStatus: domain.StatusRejected,
			wantReason: "Employment verification failed: No active contract",
		},
		{
			name:       "verifier unreachable is pending",
			err:        errors.New("dial tcp: connection refused"),
			wantStatus: domain.StatusVerificationPending,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService(Collaborators{Employment: &stubEmployment{record: tt.record, err: tt.err}})

			result := svc.checkEmployment(context.Background(), *validApplication())
			if tt.wantNil {
				assert.Nil(t, result)
				return
			}
			require.NotNil(t, result)
			assert.Equal(t, tt.wantStatus, result.Status)
			if tt.wantReason != "" {
				assert.Equal(t, tt.wantReason, result.Reason)
			}
		})
	}
}
