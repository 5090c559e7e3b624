package port

import (
	"context"

	"github.com/google/uuid"

	"vivaran/internal/domain"
)

// ExtractionRunRepository manages persistence of extraction runs.
type ExtractionRunRepository interface {
	Create(ctx context.Context, run *domain.ExtractionRun) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ExtractionRun, error)
	List(ctx context.Context, offset, limit int) ([]domain.ExtractionRun, int, error)
}
