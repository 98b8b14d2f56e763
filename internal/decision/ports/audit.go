package ports

import (
	"context"

	"lendflow/internal/domain"
)

// Auditor defines the interface for emitting compliance audit records. The
// pipeline depends on this port, not on the audit package.
type Auditor interface {
	LogEvent(ctx context.Context, record domain.AuditRecord) error
}
