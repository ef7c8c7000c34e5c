package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"docextractor/internal/domain"
)

// MockExtractionService is a mock implementation of service.ExtractionService.
type MockExtractionService struct {
	mock.Mock
}

func (m *MockExtractionService) Extract(ctx context.Context, req *domain.ExtractionRequest) (*domain.ExtractionResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExtractionResponse), args.Error(1)
}

func (m *MockExtractionService) Providers() []domain.Provider {
	args := m.Called()
	return args.Get(0).([]domain.Provider)
}
