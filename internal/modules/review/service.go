package review

import (
	"context"
	"errors"

	"bookingapi/internal/domain"
	"bookingapi/internal/repository"
)

type Repository interface {
	List(ctx context.Context) ([]domain.Review, error)
	Create(ctx context.Context, r *domain.Review) error
	GetByID(ctx context.Context, id string) (*domain.Review, error)
	Update(ctx context.Context, id string, fields map[string]any) (*domain.Review, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Review, error) {
	return s.repo.List(ctx)
}

func (s *Service) Create(ctx context.Context, req CreateReviewRequest) (*domain.Review, error) {
	rv := &domain.Review{
		UserID:     req.UserID,
		PropertyID: req.PropertyID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}
	if err := s.repo.Create(ctx, rv); err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			return nil, ErrInvalidReference
		}
		return nil, err
	}
	return rv, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	rv, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return rv, err
}

func (s *Service) Update(ctx context.Context, id string, req UpdateReviewRequest) (*domain.Review, error) {
	rv, err := s.repo.Update(ctx, id, req.fields())
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return rv, err
}

func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
