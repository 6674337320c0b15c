package booking

import "time"

type CreateBookingRequest struct {
	UserID         string    `json:"userId" validate:"required"`
	PropertyID     string    `json:"propertyId" validate:"required"`
	CheckinDate    time.Time `json:"checkinDate" validate:"required"`
	CheckoutDate   time.Time `json:"checkoutDate" validate:"required,gtfield=CheckinDate"`
	NumberOfGuests int       `json:"numberOfGuests" validate:"gte=0"`
	TotalPrice     float64   `json:"totalPrice" validate:"gte=0"`
	BookingStatus  string    `json:"bookingStatus"`
}

type UpdateBookingRequest struct {
	CheckinDate    *time.Time `json:"checkinDate"`
	CheckoutDate   *time.Time `json:"checkoutDate"`
	NumberOfGuests *int       `json:"numberOfGuests" validate:"omitnil,gte=0"`
	TotalPrice     *float64   `json:"totalPrice" validate:"omitnil,gte=0"`
	BookingStatus  *string    `json:"bookingStatus"`
}

func (r UpdateBookingRequest) fields() map[string]any {
	f := map[string]any{}
	if r.CheckinDate != nil {
		f["checkin_date"] = *r.CheckinDate
	}
	if r.CheckoutDate != nil {
		f["checkout_date"] = *r.CheckoutDate
	}
	if r.NumberOfGuests != nil {
		f["number_of_guests"] = *r.NumberOfGuests
	}
	if r.TotalPrice != nil {
		f["total_price"] = *r.TotalPrice
	}
	if r.BookingStatus != nil {
		f["booking_status"] = *r.BookingStatus
	}
	return f
}
