package auth

import (
	"context"

	"bookingapi/internal/domain"
)

// UserRepositoryInterface is the user lookup the login flow needs
type UserRepositoryInterface interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type jwtService interface {
	GenerateToken(userID string) (string, error)
}
