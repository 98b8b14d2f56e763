package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"lendflow/internal/domain"
)

// Postgres persists accepted applications in PostgreSQL. The application row
// and its document rows are written in one transaction.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres constructs a PostgreSQL-backed application store.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (s *Postgres) Save(ctx context.Context, app domain.Application) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	appID := uuid.New()
	_, err = tx.Exec(ctx,
		`INSERT INTO applications (id, applicant_name, email, phone, loan_amount, loan_purpose, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		appID, app.ApplicantName, app.Email, app.Phone, app.LoanAmount, app.LoanPurpose, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("insert application: %w", err)
	}

	for _, doc := range app.Documents {
		_, err = tx.Exec(ctx,
			`INSERT INTO application_documents (id, application_id, document_type, file_ref)
			 VALUES ($1, $2, $3, $4)`,
			uuid.New(), appID, string(doc.Type), doc.FileRef,
		)
		if err != nil {
			return fmt.Errorf("insert document: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// CountByEmail reports how many applications an applicant has on file.
func (s *Postgres) CountByEmail(ctx context.Context, email string) (int, error) {
	var count int
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM applications WHERE email = $1`, email,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count applications: %w", err)
	}
	return count, nil
}
