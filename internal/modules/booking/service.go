package booking

import (
	"context"
	"errors"

	"bookingapi/internal/domain"
	"bookingapi/internal/repository"
)

type Service struct {
	bookings BookingRepository
}

func NewService(bookings BookingRepository) *Service {
	return &Service{bookings: bookings}
}

func (s *Service) List(ctx context.Context, f repository.BookingFilters) ([]domain.Booking, error) {
	return s.bookings.List(ctx, f)
}

// Create stores a booking for an existing user and property. A missing status
// defaults to pending.
func (s *Service) Create(ctx context.Context, req CreateBookingRequest) (*domain.Booking, error) {
	status := req.BookingStatus
	if status == "" {
		status = domain.BookingPending
	}

	b := &domain.Booking{
		UserID:         req.UserID,
		PropertyID:     req.PropertyID,
		CheckinDate:    req.CheckinDate,
		CheckoutDate:   req.CheckoutDate,
		NumberOfGuests: req.NumberOfGuests,
		TotalPrice:     req.TotalPrice,
		BookingStatus:  status,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		if errors.Is(err, repository.ErrForeignKey) {
			return nil, ErrInvalidReference
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return b, err
}

// Update writes the given fields. Changed dates are checked against the stored
// ones so the stay never ends before it starts.
func (s *Service) Update(ctx context.Context, id string, req UpdateBookingRequest) (*domain.Booking, error) {
	if req.CheckinDate != nil || req.CheckoutDate != nil {
		current, err := s.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		checkin, checkout := current.CheckinDate, current.CheckoutDate
		if req.CheckinDate != nil {
			checkin = *req.CheckinDate
		}
		if req.CheckoutDate != nil {
			checkout = *req.CheckoutDate
		}
		if !checkout.After(checkin) {
			return nil, ErrInvalidDates
		}
	}

	b, err := s.bookings.Update(ctx, id, req.fields())
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return b, err
}

func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.bookings.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrForeignKey) {
		return ErrNotFound
	}
	return err
}
