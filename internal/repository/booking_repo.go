package repository

import (
	"context"

	"bookingapi/internal/domain"

	"gorm.io/gorm"
)

type BookingFilters struct {
	UserID string
}

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) List(ctx context.Context, f BookingFilters) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).Model(&domain.Booking{})

	if f.UserID != "" {
		q = q.Where("user_id = ?", f.UserID)
	}

	bookings := []domain.Booking{}
	if err := q.Preload("User").Preload("Property").Find(&bookings).Error; err != nil {
		return nil, translate(err)
	}
	return bookings, nil
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return translate(r.db.WithContext(ctx).Create(b).Error)
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	var b domain.Booking
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Preload("User").
		Preload("Property").
		First(&b).Error
	if err != nil {
		return nil, translate(err)
	}
	return &b, nil
}

func (r *BookingRepository) Update(ctx context.Context, id string, fields map[string]any) (*domain.Booking, error) {
	return updateByID[domain.Booking](ctx, r.db, id, fields)
}

func (r *BookingRepository) Delete(ctx context.Context, id string) error {
	return deleteByID[domain.Booking](ctx, r.db, id)
}
