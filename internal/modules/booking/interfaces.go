package booking

import (
	"context"

	"bookingapi/internal/domain"
	"bookingapi/internal/repository"
)

// BookingRepository defines the store operations the service needs
type BookingRepository interface {
	List(ctx context.Context, f repository.BookingFilters) ([]domain.Booking, error)
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Update(ctx context.Context, id string, fields map[string]any) (*domain.Booking, error)
	Delete(ctx context.Context, id string) error
}
