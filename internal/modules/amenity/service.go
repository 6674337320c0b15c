package amenity

import (
	"context"
	"errors"

	"bookingapi/internal/domain"
	"bookingapi/internal/repository"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Amenity, error)
	Create(ctx context.Context, a *domain.Amenity) error
	GetByID(ctx context.Context, id string) (*domain.Amenity, error)
	Update(ctx context.Context, id string, fields map[string]any) (*domain.Amenity, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Amenity, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, req CreateAmenityRequest) (*domain.Amenity, error) {
	a := &domain.Amenity{Name: req.Name}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Amenity, error) {
	a, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return a, err
}

func (s *Service) Update(ctx context.Context, id string, req UpdateAmenityRequest) (*domain.Amenity, error) {
	a, err := s.repo.Update(ctx, id, req.fields())
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return a, err
}

// Delete also drops the amenity's property links.
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrForeignKey) {
		return ErrNotFound
	}
	return err
}
