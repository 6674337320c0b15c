package user

import (
	"context"
	"errors"
	"fmt"

	"bookingapi/internal/domain"
	"bookingapi/internal/pkg/password"
	"bookingapi/internal/repository"
)

type Repository interface {
	List(ctx context.Context, f repository.UserFilters) ([]domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, id string, fields map[string]any) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, f repository.UserFilters) ([]domain.User, error) {
	return s.repo.List(ctx, f)
}

// Create stores the user with a bcrypt hash in place of the plaintext password.
func (s *Service) Create(ctx context.Context, req CreateUserRequest) (*domain.User, error) {
	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &domain.User{
		Username:    req.Username,
		Password:    hash,
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		PictureURL:  req.PictureURL,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return u, err
}

func (s *Service) Update(ctx context.Context, id string, req UpdateUserRequest) (*domain.User, error) {
	u, err := s.repo.Update(ctx, id, req.fields())
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return u, err
}

// Delete fails with ErrNotFound when the user is missing or still has
// bookings or reviews.
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrForeignKey) {
		return ErrNotFound
	}
	return err
}
