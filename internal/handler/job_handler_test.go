package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"leadmend/internal/domain"
	"leadmend/internal/handler"
	"leadmend/internal/service"
	"leadmend/mocks"
)

func TestJobHandler_List(t *testing.T) {
	mockJobs := new(mocks.MockJobService)
	h := handler.NewJobHandler(mockJobs)
	userID := uuid.New()

	jobs := []domain.EnrichmentJob{
		{ID: uuid.New(), UserID: userID, Workflow: "icp_fit_check", Status: domain.JobStatusCompleted},
	}
	mockJobs.On("List", mock.Anything, userID, 0, 20).Return(jobs, 1, nil)

	w := httptest.NewRecorder()
	c := authedContext(w, userID, "")
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/jobs", nil)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 1, resp.Meta.Total)
}

func TestJobHandler_List_PassesPagingParams(t *testing.T) {
	mockJobs := new(mocks.MockJobService)
	h := handler.NewJobHandler(mockJobs)
	userID := uuid.New()

	mockJobs.On("List", mock.Anything, userID, 40, 10).
		Return([]domain.EnrichmentJob{}, 55, nil)

	w := httptest.NewRecorder()
	c := authedContext(w, userID, "")
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/jobs?offset=40&limit=10", nil)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockJobs.AssertExpectations(t)
}

func TestJobHandler_GetByID_WithDownloadURL(t *testing.T) {
	mockJobs := new(mocks.MockJobService)
	h := handler.NewJobHandler(mockJobs)
	userID, jobID := uuid.New(), uuid.New()

	detail := &service.JobDetail{
		Job:         &domain.EnrichmentJob{ID: jobID, UserID: userID, Status: domain.JobStatusCompleted},
		DownloadURL: "https://s3.example.com/signed",
	}
	mockJobs.On("Get", mock.Anything, userID, jobID).Return(detail, nil)

	w := httptest.NewRecorder()
	c := authedContext(w, userID, jobID.String())
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/jobs/"+jobID.String(), nil)

	h.GetByID(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "https://s3.example.com/signed")
}

func TestJobHandler_GetByID_NotFound(t *testing.T) {
	mockJobs := new(mocks.MockJobService)
	h := handler.NewJobHandler(mockJobs)
	userID, jobID := uuid.New(), uuid.New()

	mockJobs.On("Get", mock.Anything, userID, jobID).Return(nil, domain.ErrNotFound)

	w := httptest.NewRecorder()
	c := authedContext(w, userID, jobID.String())
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/jobs/"+jobID.String(), nil)

	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestJobHandler_GetByID_InvalidID(t *testing.T) {
	mockJobs := new(mocks.MockJobService)
	h := handler.NewJobHandler(mockJobs)

	w := httptest.NewRecorder()
	c := authedContext(w, uuid.New(), "banana")
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/v1/jobs/banana", nil)

	h.GetByID(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockJobs.AssertNotCalled(t, "Get", mock.Anything, mock.Anything, mock.Anything)
}

func TestJobHandler_Delete(t *testing.T) {
	mockJobs := new(mocks.MockJobService)
	h := handler.NewJobHandler(mockJobs)
	userID, jobID := uuid.New(), uuid.New()

	mockJobs.On("Delete", mock.Anything, userID, jobID).Return(nil)

	w := httptest.NewRecorder()
	c := authedContext(w, userID, jobID.String())
	c.Request, _ = http.NewRequest(http.MethodDelete, "/api/v1/jobs/"+jobID.String(), nil)

	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "job deleted")
	mockJobs.AssertExpectations(t)
}

func TestJobHandler_Delete_NotFound(t *testing.T) {
	mockJobs := new(mocks.MockJobService)
	h := handler.NewJobHandler(mockJobs)
	userID, jobID := uuid.New(), uuid.New()

	mockJobs.On("Delete", mock.Anything, userID, jobID).Return(domain.ErrNotFound)

	w := httptest.NewRecorder()
	c := authedContext(w, userID, jobID.String())
	c.Request, _ = http.NewRequest(http.MethodDelete, "/api/v1/jobs/"+jobID.String(), nil)

	h.Delete(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
