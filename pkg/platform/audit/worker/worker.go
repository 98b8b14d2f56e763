package worker

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"
)

const (
	defaultInterval  = 2 * time.Second
	defaultBatchSize = 100
)

// Worker drains unpublished audit events from the outbox table to Kafka.
// Publishing is at-least-once: a row is marked published only after the
// produce is acknowledged, so a crash between the two replays the event.
type Worker struct {
	db       *sql.DB
	producer *kgo.Client
	topic    string
	interval time.Duration
	batch    int
	logger   *slog.Logger
}

// Option configures the Worker.
type Option func(*Worker)

// WithInterval overrides the poll interval.
func WithInterval(d time.Duration) Option {
	return func(w *Worker) {
		w.interval = d
	}
}

// WithBatchSize overrides how many rows one drain pass claims.
func WithBatchSize(n int) Option {
	return func(w *Worker) {
		w.batch = n
	}
}

// WithLogger sets a logger for drain failures.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Worker) {
		w.logger = logger
	}
}

func New(db *sql.DB, producer *kgo.Client, topic string, opts ...Option) *Worker {
	w := &Worker{
		db:       db,
		producer: producer,
		topic:    topic,
		interval: defaultInterval,
		batch:    defaultBatchSize,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run polls the outbox until the context is cancelled. Drain failures are
// logged and retried on the next tick rather than stopping the worker.
func (w *Worker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.drain(ctx); err != nil {
				if w.logger != nil {
					w.logger.ErrorContext(ctx, "audit outbox drain failed", "error", err)
				}
			}
		}
	}
}

func (w *Worker) drain(ctx context.Context) error {
	rows, err := w.db.QueryContext(ctx,
		`SELECT id, topic_key, payload FROM audit_outbox
		 WHERE published_at IS NULL
		 ORDER BY created_at
		 LIMIT $1`,
		w.batch,
	)
	if err != nil {
		return fmt.Errorf("select outbox rows: %w", err)
	}
	defer rows.Close()

	type outboxRow struct {
		id      string
		key     string
		payload []byte
	}
	var pending []outboxRow
	for rows.Next() {
		var r outboxRow
		if err := rows.Scan(&r.id, &r.key, &r.payload); err != nil {
			return fmt.Errorf("scan outbox row: %w", err)
		}
		pending = append(pending, r)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate outbox rows: %w", err)
	}

	for _, r := range pending {
		record := &kgo.Record{
			Topic: w.topic,
			Key:   []byte(r.key),
			Value: r.payload,
		}
		if err := w.producer.ProduceSync(ctx, record).FirstErr(); err != nil {
			return fmt.Errorf("produce audit event %s: %w", r.id, err)
		}
		if _, err := w.db.ExecContext(ctx,
			`UPDATE audit_outbox SET published_at = $1 WHERE id = $2`,
			time.Now(), r.id,
		); err != nil {
			return fmt.Errorf("mark audit event published: %w", err)
		}
	}
	return nil
}
