package ports

import (
	"context"

	"github.com/google/uuid"

	"autopredict-web/internal/core/domain"
)

// ResultCarrier hands one prediction result across the redirect from the form
// to the results page. Take yields a stored value at most once.
type ResultCarrier interface {
	Put(ctx context.Context, result *domain.PredictionResult) (uuid.UUID, error)
	Take(ctx context.Context, id uuid.UUID) (*domain.PredictionResult, bool)
}
