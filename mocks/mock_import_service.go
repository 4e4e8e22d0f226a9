package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"leadmend/internal/domain"
	"leadmend/internal/service"
	"leadmend/internal/session"
	"leadmend/internal/workflow"
)

// MockImportService is a mock implementation of service.ImportService.
type MockImportService struct {
	mock.Mock
}

func (m *MockImportService) CreateSession(userID uuid.UUID, workflowID workflow.ID) (session.State, error) {
	args := m.Called(userID, workflowID)
	return args.Get(0).(session.State), args.Error(1)
}

func (m *MockImportService) GetSession(userID, sessionID uuid.UUID) (session.State, error) {
	args := m.Called(userID, sessionID)
	return args.Get(0).(session.State), args.Error(1)
}

func (m *MockImportService) LoadFile(userID, sessionID uuid.UUID, name string, data []byte) (session.State, error) {
	args := m.Called(userID, sessionID, name, data)
	return args.Get(0).(session.State), args.Error(1)
}

func (m *MockImportService) SetOption(userID, sessionID uuid.UUID, name string, enabled bool) (session.State, error) {
	args := m.Called(userID, sessionID, name, enabled)
	return args.Get(0).(session.State), args.Error(1)
}

func (m *MockImportService) SetAnswer(userID, sessionID uuid.UUID, promptID, text string) (session.State, error) {
	args := m.Called(userID, sessionID, promptID, text)
	return args.Get(0).(session.State), args.Error(1)
}

func (m *MockImportService) Submit(ctx context.Context, userID, sessionID uuid.UUID) (session.State, error) {
	args := m.Called(ctx, userID, sessionID)
	return args.Get(0).(session.State), args.Error(1)
}

func (m *MockImportService) Download(userID, sessionID uuid.UUID, format domain.DownloadFormat) (*service.DownloadArtifact, error) {
	args := m.Called(userID, sessionID, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DownloadArtifact), args.Error(1)
}

func (m *MockImportService) Reset(userID, sessionID uuid.UUID) (session.State, error) {
	args := m.Called(userID, sessionID)
	return args.Get(0).(session.State), args.Error(1)
}

func (m *MockImportService) Close(userID, sessionID uuid.UUID) error {
	args := m.Called(userID, sessionID)
	return args.Error(0)
}
