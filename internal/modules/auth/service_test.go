package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookingapi/internal/domain"
	"bookingapi/internal/pkg/password"
	"bookingapi/internal/repository"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type mockJWT struct {
	mock.Mock
}

func (m *mockJWT) GenerateToken(userID string) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func storedUser(t *testing.T) *domain.User {
	t.Helper()
	hash, err := password.Hash("secret123")
	require.NoError(t, err)
	return &domain.User{ID: "u-1", Username: "jdoe", Password: hash}
}

func TestLogin_Success(t *testing.T) {
	users := new(mockUserRepo)
	tokens := new(mockJWT)
	svc := NewService(users, tokens)

	users.On("GetByUsername", mock.Anything, "jdoe").Return(storedUser(t), nil)
	tokens.On("GenerateToken", "u-1").Return("signed.jwt.token", nil)

	token, err := svc.Login(context.Background(), LoginRequest{Username: "jdoe", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", token)
	users.AssertExpectations(t)
	tokens.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	users := new(mockUserRepo)
	tokens := new(mockJWT)
	svc := NewService(users, tokens)

	users.On("GetByUsername", mock.Anything, "jdoe").Return(storedUser(t), nil)

	token, err := svc.Login(context.Background(), LoginRequest{Username: "jdoe", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
	tokens.AssertNotCalled(t, "GenerateToken", mock.Anything)
}

func TestLogin_UnknownUser(t *testing.T) {
	users := new(mockUserRepo)
	tokens := new(mockJWT)
	svc := NewService(users, tokens)

	users.On("GetByUsername", mock.Anything, "ghost").Return(nil, repository.ErrNotFound)

	_, err := svc.Login(context.Background(), LoginRequest{Username: "ghost", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	tokens.AssertNotCalled(t, "GenerateToken", mock.Anything)
}

func TestLogin_StoreFailure(t *testing.T) {
	users := new(mockUserRepo)
	svc := NewService(users, new(mockJWT))
	storeErr := errors.New("database is locked")

	users.On("GetByUsername", mock.Anything, "jdoe").Return(nil, storeErr)

	_, err := svc.Login(context.Background(), LoginRequest{Username: "jdoe", Password: "secret123"})
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_EmptyCredentials(t *testing.T) {
	users := new(mockUserRepo)
	tokens := new(mockJWT)
	svc := NewService(users, tokens)

	for _, req := range []LoginRequest{
		{Username: "jdoe"},
		{Password: "secret123"},
		{},
	} {
		_, err := svc.Login(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	}
	users.AssertNotCalled(t, "GetByUsername", mock.Anything, mock.Anything)
	tokens.AssertNotCalled(t, "GenerateToken", mock.Anything)
}
