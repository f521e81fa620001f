package repositories

import (
	"context"

	"github.com/rgarciarojo76-ctrl/Metodo-INRS/internal/domain/entities"
)

// EvaluationRepository defines the interface for stored evaluation records
type EvaluationRepository interface {
	// Create stores a new evaluation
	Create(ctx context.Context, evaluation *entities.Evaluation) error

	// GetByID retrieves an evaluation by ID
	GetByID(ctx context.Context, id string) (*entities.Evaluation, error)

	// Update replaces a stored evaluation
	Update(ctx context.Context, evaluation *entities.Evaluation) error

	// Delete deletes an evaluation
	Delete(ctx context.Context, id string) error

	// List retrieves evaluations, most recently updated first
	List(ctx context.Context, filter EvaluationFilter) ([]*entities.Evaluation, error)
}

// EvaluationFilter narrows List results
type EvaluationFilter struct {
	CompanyName string
	Limit       int
	Offset      int
}
