package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"leadmend/internal/domain"
)

// MockJobRepo is a mock implementation of port.JobRepository.
type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.EnrichmentJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockJobRepo) GetByID(ctx context.Context, userID, jobID uuid.UUID) (*domain.EnrichmentJob, error) {
	args := m.Called(ctx, userID, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EnrichmentJob), args.Error(1)
}

func (m *MockJobRepo) ListByUser(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.EnrichmentJob, int, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.EnrichmentJob), args.Int(1), args.Error(2)
}

func (m *MockJobRepo) Delete(ctx context.Context, userID, jobID uuid.UUID) error {
	args := m.Called(ctx, userID, jobID)
	return args.Error(0)
}
