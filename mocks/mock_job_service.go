package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"leadmend/internal/domain"
	"leadmend/internal/service"
)

// MockJobService is a mock implementation of service.JobService.
type MockJobService struct {
	mock.Mock
}

func (m *MockJobService) List(ctx context.Context, userID uuid.UUID, offset, limit int) ([]domain.EnrichmentJob, int, error) {
	args := m.Called(ctx, userID, offset, limit)
	var jobs []domain.EnrichmentJob
	if args.Get(0) != nil {
		jobs = args.Get(0).([]domain.EnrichmentJob)
	}
	return jobs, args.Int(1), args.Error(2)
}

func (m *MockJobService) Get(ctx context.Context, userID, jobID uuid.UUID) (*service.JobDetail, error) {
	args := m.Called(ctx, userID, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.JobDetail), args.Error(1)
}

func (m *MockJobService) Delete(ctx context.Context, userID, jobID uuid.UUID) error {
	args := m.Called(ctx, userID, jobID)
	return args.Error(0)
}
