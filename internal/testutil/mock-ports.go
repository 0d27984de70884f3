package testutil

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"autopredict-web/internal/core/domain"
	ports "autopredict-web/internal/core/ports/output"
)

// MockPredictorAPI is a mock of PredictorAPI.
type MockPredictorAPI struct {
	mock.Mock
}

func (m *MockPredictorAPI) FetchFormOptions(ctx context.Context) (*domain.FormOptions, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FormOptions), args.Error(1)
}

func (m *MockPredictorAPI) SubmitPrediction(ctx context.Context, req domain.PredictionRequest) (*domain.PredictionResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PredictionResult), args.Error(1)
}

func (m *MockPredictorAPI) FetchDashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

// MockResultCarrier is a mock of ResultCarrier.
type MockResultCarrier struct {
	mock.Mock
}

func (m *MockResultCarrier) Put(ctx context.Context, result *domain.PredictionResult) (uuid.UUID, error) {
	args := m.Called(ctx, result)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockResultCarrier) Take(ctx context.Context, id uuid.UUID) (*domain.PredictionResult, bool) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.PredictionResult), args.Bool(1)
}

// MockImageProber is a mock of ImageProber.
type MockImageProber struct {
	mock.Mock
}

func (m *MockImageProber) Probe(ctx context.Context, images []ports.ImageProbe) (map[string]bool, error) {
	args := m.Called(ctx, images)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]bool), args.Error(1)
}
