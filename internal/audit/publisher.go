package audit

import (
	"context"
	"time"

	"github.com/google/uuid"

	"lendflow/internal/domain"
	audit "lendflow/pkg/platform/audit"
)

// Publisher records decision audit events. It is append-only and uses the
// audit store for persistence so tests can swap sinks easily.
type Publisher struct {
	store audit.Store
}

func NewPublisher(store audit.Store) *Publisher {
	return &Publisher{store: store}
}

func (p *Publisher) LogEvent(ctx context.Context, record domain.AuditRecord) error {
	event := audit.Event{
		ID:        uuid.NewString(),
		RunID:     record.RunID,
		Email:     record.ApplicantEmail,
		Action:    string(record.Event),
		Outcome:   string(record.Outcome),
		Details:   record.Details,
		Timestamp: record.CreatedAt,
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	return p.store.Append(ctx, event)
}

// List returns the audit trail for one applicant.
func (p *Publisher) List(ctx context.Context, email string) ([]audit.Event, error) {
	return p.store.ListByEmail(ctx, email)
}
