package ports

import (
	"context"

	"lendflow/internal/domain"
)

// DocumentResult reports whether a submitted document set is complete and
// authentic. A non-empty MissingDocuments list means the set is incomplete, as
// opposed to present but invalid.
type DocumentResult struct {
	Valid            bool
	Message          string
	MissingDocuments []string
}

// DocumentValidator defines the interface for document checks. This port lets
// the pipeline verify attachments without depending on a concrete validation
// service implementation.
type DocumentValidator interface {
	ValidateDocuments(ctx context.Context, docs []domain.Document) (*DocumentResult, error)
}
