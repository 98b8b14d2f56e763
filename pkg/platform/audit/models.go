package audit

import (
	"context"
	"time"
)

// Event is the persistence model for one compliance audit record. Kept
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	ID        string
	RunID     string
	Email     string
	Action    string
	Outcome   string
	Details   string
	Timestamp time.Time
}

// Store persists audit events for auditability. Swap with concrete storage
// without touching the emitting side.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByEmail(ctx context.Context, email string) ([]Event, error)
}
