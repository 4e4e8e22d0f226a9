package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"leadmend/internal/port"
)

// MockEnrichmentClient is a mock implementation of port.EnrichmentClient.
type MockEnrichmentClient struct {
	mock.Mock
}

func (m *MockEnrichmentClient) Enrich(ctx context.Context, input port.EnrichInput) ([]byte, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
