package host

import (
	"context"
	"errors"
	"fmt"

	"bookingapi/internal/domain"
	"bookingapi/internal/pkg/password"
	"bookingapi/internal/repository"
)

type Repository interface {
	List(ctx context.Context, f repository.HostFilters) ([]domain.Host, error)
	Create(ctx context.Context, h *domain.Host) error
	GetByID(ctx context.Context, id string) (*domain.Host, error)
	Update(ctx context.Context, id string, fields map[string]any) (*domain.Host, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, f repository.HostFilters) ([]domain.Host, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) Create(ctx context.Context, req CreateHostRequest) (*domain.Host, error) {
	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	h := &domain.Host{
		Username:    req.Username,
		Password:    hash,
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		PictureURL:  req.PictureURL,
		AboutMe:     req.AboutMe,
	}
	if err := s.repo.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Host, error) {
	h, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return h, err
}

// Update writes the given fields and returns the host with its listings.
func (s *Service) Update(ctx context.Context, id string, req UpdateHostRequest) (*domain.Host, error) {
	if _, err := s.repo.Update(ctx, id, req.fields()); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Delete reports ErrNotFound for a host that still owns listings.
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrForeignKey) {
		return ErrNotFound
	}
	return err
}
