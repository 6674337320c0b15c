package repository

import (
	"context"

	"bookingapi/internal/domain"

	"gorm.io/gorm"
)

type AmenityRepository struct {
	db *gorm.DB
}

func NewAmenityRepository(db *gorm.DB) *AmenityRepository {
	return &AmenityRepository{db: db}
}

func (r *AmenityRepository) List(ctx context.Context) ([]domain.Amenity, error) {
	amenities := []domain.Amenity{}
	if err := r.db.WithContext(ctx).Find(&amenities).Error; err != nil {
		return nil, translate(err)
	}
	return amenities, nil
}

func (r *AmenityRepository) Create(ctx context.Context, a *domain.Amenity) error {
	return translate(r.db.WithContext(ctx).Create(a).Error)
}

func (r *AmenityRepository) GetByID(ctx context.Context, id string) (*domain.Amenity, error) {
	var a domain.Amenity
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&a).Error; err != nil {
		return nil, translate(err)
	}
	return &a, nil
}

func (r *AmenityRepository) Update(ctx context.Context, id string, fields map[string]any) (*domain.Amenity, error) {
	return updateByID[domain.Amenity](ctx, r.db, id, fields)
}

func (r *AmenityRepository) Delete(ctx context.Context, id string) error {
	return deleteByID[domain.Amenity](ctx, r.db, id)
}
