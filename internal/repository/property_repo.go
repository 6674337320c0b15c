package repository

import (
	"context"

	"bookingapi/internal/domain"

	"gorm.io/gorm"
)

type PropertyFilters struct {
	// Location matches as a literal substring, ignoring case.
	Location string
	// MaxPrice keeps properties priced at or below it.
	MaxPrice *float64
	// Amenities keeps properties linked to at least one amenity with one of these names.
	Amenities []string
}

type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

// List returns matching properties with amenities and reviews.
func (r *PropertyRepository) List(ctx context.Context, f PropertyFilters) ([]domain.Property, error) {
	q := r.db.WithContext(ctx).Model(&domain.Property{})

	if f.Location != "" {
		q = q.Where(containsClause("properties.location"), containsPattern(f.Location))
	}

	if f.MaxPrice != nil {
		q = q.Where("properties.price_per_night <= ?", *f.MaxPrice)
	}

	if len(f.Amenities) > 0 {
		q = q.Where(`EXISTS (
SELECT 1
FROM property_amenities pa
JOIN amenities a ON a.id = pa.amenity_id
WHERE pa.property_id = properties.id
  AND a.name IN ?
)`, f.Amenities)
	}

	properties := []domain.Property{}
	err := q.
		Preload("Amenities").
		Preload("Reviews").
		Find(&properties).Error
	if err != nil {
		return nil, translate(err)
	}
	return properties, nil
}

// Create inserts the property with its images and links it to the amenities
// listed by id. The amenity rows themselves are never written.
func (r *PropertyRepository) Create(ctx context.Context, p *domain.Property) error {
	return translate(r.db.WithContext(ctx).Omit("Amenities.*").Create(p).Error)
}

// GetByID returns the property with amenities, reviews and bookings.
func (r *PropertyRepository) GetByID(ctx context.Context, id string) (*domain.Property, error) {
	var p domain.Property
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Preload("Amenities").
		Preload("Reviews").
		Preload("Bookings").
		First(&p).Error
	if err != nil {
		return nil, translate(err)
	}
	return &p, nil
}

func (r *PropertyRepository) Update(ctx context.Context, id string, fields map[string]any) (*domain.Property, error) {
	return updateByID[domain.Property](ctx, r.db, id, fields)
}

func (r *PropertyRepository) Delete(ctx context.Context, id string) error {
	return deleteByID[domain.Property](ctx, r.db, id)
}
