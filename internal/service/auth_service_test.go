package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"leadmend/internal/config"
	"leadmend/internal/domain"
	"leadmend/internal/service"
	"leadmend/mocks"
)

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:             "test-secret",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 24 * time.Hour,
		Issuer:             "leadmend-test",
	}
}

func activeUser(t *testing.T, email, password string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return &domain.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     "Jane Doe",
		IsActive:     true,
	}
}

func TestRegister_Success(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	email := new(mocks.MockEmailSender)
	svc := service.NewAuthService(userRepo, email, testJWTConfig())

	userRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(nil, domain.ErrNotFound)
	userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "jane@example.com" && u.IsActive
	})).Return(nil)
	email.On("SendWelcomeEmail", mock.Anything, "jane@example.com", "Jane Doe").Return(nil)

	user, pair, err := svc.Register(context.Background(), service.RegisterInput{
		Email:    "  Jane@Example.com ",
		Password: "supersecret",
		FullName: "Jane Doe",
	})

	assert.NoError(t, err)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("supersecret")))
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)
	userRepo.AssertExpectations(t)
	email.AssertExpectations(t)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	email := new(mocks.MockEmailSender)
	svc := service.NewAuthService(userRepo, email, testJWTConfig())

	userRepo.On("GetByEmail", mock.Anything, "jane@example.com").
		Return(activeUser(t, "jane@example.com", "whatever"), nil)

	_, _, err := svc.Register(context.Background(), service.RegisterInput{
		Email:    "jane@example.com",
		Password: "supersecret",
		FullName: "Jane Doe",
	})

	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRegister_WelcomeEmailFailureDoesNotFailSignup(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	email := new(mocks.MockEmailSender)
	svc := service.NewAuthService(userRepo, email, testJWTConfig())

	userRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(nil, domain.ErrNotFound)
	userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	email.On("SendWelcomeEmail", mock.Anything, "jane@example.com", "Jane Doe").
		Return(errors.New("ses throttled"))

	user, pair, err := svc.Register(context.Background(), service.RegisterInput{
		Email:    "jane@example.com",
		Password: "supersecret",
		FullName: "Jane Doe",
	})

	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.NotNil(t, pair)
}

func TestLogin_Success(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, new(mocks.MockEmailSender), testJWTConfig())

	user := activeUser(t, "jane@example.com", "supersecret")
	userRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "jane@example.com",
		Password: "supersecret",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
	assert.True(t, pair.ExpiresAt.After(time.Now()))
}

func TestLogin_WrongPassword(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, new(mocks.MockEmailSender), testJWTConfig())

	userRepo.On("GetByEmail", mock.Anything, "jane@example.com").
		Return(activeUser(t, "jane@example.com", "supersecret"), nil)

	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "jane@example.com",
		Password: "wrong",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_UnknownEmailIndistinguishableFromWrongPassword(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, new(mocks.MockEmailSender), testJWTConfig())

	userRepo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, domain.ErrNotFound)

	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "ghost@example.com",
		Password: "supersecret",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLogin_InactiveUser(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, new(mocks.MockEmailSender), testJWTConfig())

	user := activeUser(t, "jane@example.com", "supersecret")
	user.IsActive = false
	userRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(user, nil)

	_, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "jane@example.com",
		Password: "supersecret",
	})

	assert.ErrorIs(t, err, domain.ErrUserInactive)
}

func TestValidateToken_AccessTokenRoundTrip(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, new(mocks.MockEmailSender), testJWTConfig())

	user := activeUser(t, "jane@example.com", "supersecret")
	userRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "jane@example.com",
		Password: "supersecret",
	})
	assert.NoError(t, err)

	claims, err := svc.ValidateToken(pair.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "jane@example.com", claims.Email)
}

func TestValidateToken_RefreshTokenRejectedAsAccess(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, new(mocks.MockEmailSender), testJWTConfig())

	user := activeUser(t, "jane@example.com", "supersecret")
	userRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "jane@example.com",
		Password: "supersecret",
	})
	assert.NoError(t, err)

	_, err = svc.ValidateToken(pair.RefreshToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := service.NewAuthService(new(mocks.MockUserRepo), new(mocks.MockEmailSender), testJWTConfig())

	_, err := svc.ValidateToken("not.a.jwt")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestRefreshToken_IssuesNewPair(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, new(mocks.MockEmailSender), testJWTConfig())

	user := activeUser(t, "jane@example.com", "supersecret")
	userRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(user, nil)
	userRepo.On("GetByID", mock.Anything, user.ID).Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "jane@example.com",
		Password: "supersecret",
	})
	assert.NoError(t, err)

	fresh, err := svc.RefreshToken(context.Background(), pair.RefreshToken)
	assert.NoError(t, err)
	assert.NotEmpty(t, fresh.AccessToken)

	claims, err := svc.ValidateToken(fresh.AccessToken)
	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
}

func TestRefreshToken_AccessTokenRejected(t *testing.T) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, new(mocks.MockEmailSender), testJWTConfig())

	user := activeUser(t, "jane@example.com", "supersecret")
	userRepo.On("GetByEmail", mock.Anything, "jane@example.com").Return(user, nil)

	pair, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "jane@example.com",
		Password: "supersecret",
	})
	assert.NoError(t, err)

	_, err = svc.RefreshToken(context.Background(), pair.AccessToken)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
