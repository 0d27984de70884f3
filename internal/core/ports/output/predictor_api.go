package ports

import (
	"context"

	"autopredict-web/internal/core/domain"
)

// PredictorAPI defines the contract of the remote prediction backend.
// Implementations return *domain.NetworkError or *domain.ServerError on failure.
type PredictorAPI interface {
	// GET /predictor/api/options/
	FetchFormOptions(ctx context.Context) (*domain.FormOptions, error)

	// POST /predictor/api/predict/ - the request must already be validated
	SubmitPrediction(ctx context.Context, req domain.PredictionRequest) (*domain.PredictionResult, error)

	// GET /predictor/api/stats/
	FetchDashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}
