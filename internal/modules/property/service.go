package property

import (
	"context"
	"errors"

	"bookingapi/internal/domain"
	"bookingapi/internal/repository"
)

type Repository interface {
	List(ctx context.Context, f repository.PropertyFilters) ([]domain.Property, error)
	Create(ctx context.Context, p *domain.Property) error
	GetByID(ctx context.Context, id string) (*domain.Property, error)
	Update(ctx context.Context, id string, fields map[string]any) (*domain.Property, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, f repository.PropertyFilters) ([]domain.Property, error) {
	return s.repo.List(ctx, f)
}

// Create inserts the property, links the given amenities and creates the
// images. The stored property is read back with its relations.
func (s *Service) Create(ctx context.Context, req CreatePropertyRequest) (*domain.Property, error) {
	p := &domain.Property{
		HostID:        req.HostID,
		Title:         req.Title,
		Description:   req.Description,
		Location:      req.Location,
		PricePerNight: req.PricePerNight,
		BedroomCount:  req.BedroomCount,
		BathRoomCount: req.BathRoomCount,
		MaxGuestCount: req.MaxGuestCount,
		Rating:        req.Rating,
	}
	for _, id := range req.AmenityIDs {
		p.Amenities = append(p.Amenities, domain.Amenity{ID: id})
	}
	for _, img := range req.Images {
		p.Images = append(p.Images, domain.Image{URL: img.URL})
	}

	if err := s.repo.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			return nil, ErrInvalidReference
		}
		return nil, err
	}

	return s.GetByID(ctx, p.ID)
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	p, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return p, err
}

// Update writes the given fields and reads the property back with its relations.
func (s *Service) Update(ctx context.Context, id string, req UpdatePropertyRequest) (*domain.Property, error) {
	if _, err := s.repo.Update(ctx, id, req.fields()); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Delete removes the property with its images and amenity links. A property
// with bookings or reviews is reported as not found.
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrForeignKey) {
		return ErrNotFound
	}
	return err
}
