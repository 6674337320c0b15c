package booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookingapi/internal/domain"
	"bookingapi/internal/repository"
)

// Mock repositories
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) List(ctx context.Context, f repository.BookingFilters) ([]domain.Booking, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil && b.ID == "" {
		b.ID = "b-1" // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) Update(ctx context.Context, id string, fields map[string]any) (*domain.Booking, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func validRequest() CreateBookingRequest {
	in := time.Date(2024, 3, 10, 14, 0, 0, 0, time.UTC)
	return CreateBookingRequest{
		UserID:         "u-1",
		PropertyID:     "p-1",
		CheckinDate:    in,
		CheckoutDate:   in.Add(72 * time.Hour),
		NumberOfGuests: 2,
		TotalPrice:     360,
	}
}

func TestService_Create_DefaultsStatus(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.UserID == "u-1" && b.BookingStatus == domain.BookingPending
	})).Return(nil)

	b, err := svc.Create(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "b-1", b.ID)
	assert.Equal(t, domain.BookingPending, b.BookingStatus)
	repo.AssertExpectations(t)
}

func TestService_Create_KeepsGivenStatus(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := NewService(repo)
	req := validRequest()
	req.BookingStatus = domain.BookingConfirmed

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	b, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, b.BookingStatus)
}

func TestService_Create_UnknownReference(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := NewService(repo)

	repo.On("Create", mock.Anything, mock.Anything).
		Return(fmt.Errorf("%w: %w", repository.ErrForeignKey, errors.New("FOREIGN KEY constraint failed")))

	_, err := svc.Create(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestService_Create_StoreFailurePassesThrough(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := NewService(repo)
	storeErr := errors.New("disk I/O error")

	repo.On("Create", mock.Anything, mock.Anything).Return(storeErr)

	_, err := svc.Create(context.Background(), validRequest())
	assert.ErrorIs(t, err, storeErr)
}

func TestService_Update_OnlyPresentFields(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := NewService(repo)
	status := domain.BookingCancelled

	repo.On("Update", mock.Anything, "b-1", map[string]any{"booking_status": "cancelled"}).
		Return(&domain.Booking{ID: "b-1", BookingStatus: status}, nil)

	b, err := svc.Update(context.Background(), "b-1", UpdateBookingRequest{BookingStatus: &status})
	require.NoError(t, err)
	assert.Equal(t, status, b.BookingStatus)
	repo.AssertExpectations(t)
}

func TestService_NotFound(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := NewService(repo)

	repo.On("GetByID", mock.Anything, "missing").Return(nil, repository.ErrNotFound)
	repo.On("Update", mock.Anything, "missing", map[string]any{}).Return(nil, repository.ErrNotFound)
	repo.On("Delete", mock.Anything, "missing").Return(repository.ErrNotFound)

	_, err := svc.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Update(context.Background(), "missing", UpdateBookingRequest{})
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Update_RejectsReversedDates(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := NewService(repo)
	req := validRequest()
	stored := &domain.Booking{ID: "b-1", CheckinDate: req.CheckinDate, CheckoutDate: req.CheckoutDate}

	repo.On("GetByID", mock.Anything, "b-1").Return(stored, nil)

	early := req.CheckinDate.Add(-24 * time.Hour)
	_, err := svc.Update(context.Background(), "b-1", UpdateBookingRequest{CheckoutDate: &early})
	assert.ErrorIs(t, err, ErrInvalidDates)

	late := req.CheckoutDate.Add(time.Hour)
	_, err = svc.Update(context.Background(), "b-1", UpdateBookingRequest{CheckinDate: &late})
	assert.ErrorIs(t, err, ErrInvalidDates)

	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Update_AcceptsLaterCheckout(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := NewService(repo)
	req := validRequest()
	stored := &domain.Booking{ID: "b-1", CheckinDate: req.CheckinDate, CheckoutDate: req.CheckoutDate}
	later := req.CheckoutDate.Add(48 * time.Hour)

	repo.On("GetByID", mock.Anything, "b-1").Return(stored, nil)
	repo.On("Update", mock.Anything, "b-1", map[string]any{"checkout_date": later}).
		Return(&domain.Booking{ID: "b-1", CheckinDate: req.CheckinDate, CheckoutDate: later}, nil)

	b, err := svc.Update(context.Background(), "b-1", UpdateBookingRequest{CheckoutDate: &later})
	require.NoError(t, err)
	assert.Equal(t, later, b.CheckoutDate)
	repo.AssertExpectations(t)
}

func TestService_Update_DatesOnMissingBooking(t *testing.T) {
	repo := new(MockBookingRepository)
	svc := NewService(repo)
	in := time.Now()

	repo.On("GetByID", mock.Anything, "missing").Return(nil, repository.ErrNotFound)

	_, err := svc.Update(context.Background(), "missing", UpdateBookingRequest{CheckinDate: &in})
	assert.ErrorIs(t, err, ErrNotFound)
}
