package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"leadmend/internal/domain"
	"leadmend/internal/handler"
	"leadmend/internal/service"
	"leadmend/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func jsonRequest(t *testing.T, w *httptest.ResponseRecorder, method, target string, payload interface{}) *gin.Context {
	t.Helper()
	body, err := json.Marshal(payload)
	assert.NoError(t, err)

	c, _ := gin.CreateTestContext(w)
	c.Request, err = http.NewRequest(method, target, bytes.NewReader(body))
	assert.NoError(t, err)
	c.Request.Header.Set("Content-Type", "application/json")
	return c
}

func TestAuthHandler_Register_Success(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockAuth)

	user := &domain.User{ID: uuid.New(), Email: "jane@example.com", FullName: "Jane Doe", IsActive: true}
	pair := &service.TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresAt: time.Now().Add(15 * time.Minute)}
	mockAuth.On("Register", mock.Anything, service.RegisterInput{
		Email:    "jane@example.com",
		Password: "supersecret",
		FullName: "Jane Doe",
	}).Return(user, pair, nil)

	w := httptest.NewRecorder()
	c := jsonRequest(t, w, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"email":     "jane@example.com",
		"password":  "supersecret",
		"full_name": "Jane Doe",
	})

	h.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	mockAuth.AssertExpectations(t)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockAuth)

	mockAuth.On("Register", mock.Anything, mock.AnythingOfType("service.RegisterInput")).
		Return(nil, nil, domain.ErrDuplicateEmail)

	w := httptest.NewRecorder()
	c := jsonRequest(t, w, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"email":     "jane@example.com",
		"password":  "supersecret",
		"full_name": "Jane Doe",
	})

	h.Register(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestAuthHandler_Register_ValidationError(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockAuth)

	w := httptest.NewRecorder()
	c := jsonRequest(t, w, http.MethodPost, "/api/v1/auth/register", map[string]string{
		"email": "not-an-email",
	})

	h.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockAuth.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockAuth)

	pair := &service.TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresAt: time.Now().Add(15 * time.Minute)}
	mockAuth.On("Login", mock.Anything, service.LoginInput{
		Email:    "jane@example.com",
		Password: "supersecret",
	}).Return(pair, nil)

	w := httptest.NewRecorder()
	c := jsonRequest(t, w, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "jane@example.com",
		"password": "supersecret",
	})

	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockAuth.AssertExpectations(t)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockAuth)

	mockAuth.On("Login", mock.Anything, mock.AnythingOfType("service.LoginInput")).
		Return(nil, domain.ErrInvalidCredentials)

	w := httptest.NewRecorder()
	c := jsonRequest(t, w, http.MethodPost, "/api/v1/auth/login", map[string]string{
		"email":    "jane@example.com",
		"password": "wrongpassword",
	})

	h.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "INVALID_CREDENTIALS", resp.Error.Code)
}

func TestAuthHandler_RefreshToken_Success(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockAuth)

	pair := &service.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh", ExpiresAt: time.Now().Add(15 * time.Minute)}
	mockAuth.On("RefreshToken", mock.Anything, "old-refresh").Return(pair, nil)

	w := httptest.NewRecorder()
	c := jsonRequest(t, w, http.MethodPost, "/api/v1/auth/refresh", map[string]string{
		"refresh_token": "old-refresh",
	})

	h.RefreshToken(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockAuth.AssertExpectations(t)
}

func TestAuthHandler_RefreshToken_Invalid(t *testing.T) {
	mockAuth := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockAuth)

	mockAuth.On("RefreshToken", mock.Anything, "expired").Return(nil, domain.ErrUnauthorized)

	w := httptest.NewRecorder()
	c := jsonRequest(t, w, http.MethodPost, "/api/v1/auth/refresh", map[string]string{
		"refresh_token": "expired",
	})

	h.RefreshToken(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
