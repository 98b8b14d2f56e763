package ports

import (
	"context"

	"lendflow/internal/domain"
)

// Repository persists accepted applications. From the pipeline's view the save
// is fire-and-forget: ownership of the application transfers to the store.
type Repository interface {
	Save(ctx context.Context, app domain.Application) error
}
