// Package postgres implements the audit store on a transactional outbox.
// Events land in the outbox table and the outbox worker publishes them to
// Kafka; Kafka is the source of truth for the audit trail downstream.
package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	audit "lendflow/pkg/platform/audit"
)

// Store implements audit.Store using the transactional outbox pattern.
type Store struct {
	db *sql.DB
}

// New creates a new PostgreSQL audit store that writes to the outbox.
func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// outboxPayload is the JSON structure published to Kafka. Field names match
// what the compliance consumer deserializes.
type outboxPayload struct {
	ID        string `json:"id"`
	RunID     string `json:"run_id"`
	Email     string `json:"email,omitempty"`
	Action    string `json:"action"`
	Outcome   string `json:"outcome"`
	Details   string `json:"details,omitempty"`
	Timestamp string `json:"timestamp"`
}

// Append writes an audit event to the outbox table for Kafka publishing.
func (s *Store) Append(ctx context.Context, event audit.Event) error {
	eventID := uuid.New()
	if event.ID != "" {
		parsed, err := uuid.Parse(event.ID)
		if err != nil {
			return fmt.Errorf("invalid event id: %w", err)
		}
		eventID = parsed
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	payload, err := json.Marshal(outboxPayload{
		ID:        eventID.String(),
		RunID:     event.RunID,
		Email:     event.Email,
		Action:    event.Action,
		Outcome:   event.Outcome,
		Details:   event.Details,
		Timestamp: event.Timestamp.Format(time.RFC3339Nano),
	})
	if err != nil {
		return fmt.Errorf("marshal outbox payload: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO audit_outbox (id, topic_key, payload, created_at)
		 VALUES ($1, $2, $3, $4)`,
		eventID, event.RunID, payload, event.Timestamp,
	)
	if err != nil {
		return fmt.Errorf("append audit event: %w", err)
	}
	return nil
}

// ListByEmail returns events for one applicant, oldest first.
func (s *Store) ListByEmail(ctx context.Context, email string) ([]audit.Event, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT payload FROM audit_outbox
		 WHERE payload->>'email' = $1
		 ORDER BY created_at`,
		email,
	)
	if err != nil {
		return nil, fmt.Errorf("list audit events: %w", err)
	}
	defer rows.Close()

	var events []audit.Event
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan audit event: %w", err)
		}
		var p outboxPayload
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decode audit event: %w", err)
		}
		ts, _ := time.Parse(time.RFC3339Nano, p.Timestamp)
		events = append(events, audit.Event{
			ID:        p.ID,
			RunID:     p.RunID,
			Email:     p.Email,
			Action:    p.Action,
			Outcome:   p.Outcome,
			Details:   p.Details,
			Timestamp: ts,
		})
	}
	return events, rows.Err()
}
