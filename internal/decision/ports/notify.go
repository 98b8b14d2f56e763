package ports

import (
	"context"

	"lendflow/internal/domain"
)

// Notifier dispatches the applicant-facing message for one pipeline run.
// Delivery is best-effort; failures are the sender's concern.
type Notifier interface {
	SendNotification(ctx context.Context, req domain.NotificationRequest) error
}
