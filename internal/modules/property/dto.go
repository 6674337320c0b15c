package property

import "bookingapi/internal/domain"

type ImageInput struct {
	URL string `json:"url" validate:"required"`
}

type CreatePropertyRequest struct {
	HostID        string       `json:"hostId" validate:"required"`
	Title         string       `json:"title" validate:"required"`
	Description   string       `json:"description"`
	Location      string       `json:"location"`
	PricePerNight float64      `json:"pricePerNight" validate:"gte=0"`
	BedroomCount  int          `json:"bedroomCount" validate:"gte=0"`
	BathRoomCount int          `json:"bathRoomCount" validate:"gte=0"`
	MaxGuestCount int          `json:"maxGuestCount" validate:"gte=0"`
	Rating        float64      `json:"rating" validate:"gte=0"`
	AmenityIDs    []string     `json:"amenityIds" validate:"dive,required"`
	Images        []ImageInput `json:"images" validate:"dive"`
}

type UpdatePropertyRequest struct {
	Title         *string  `json:"title" validate:"omitnil,min=1"`
	Description   *string  `json:"description"`
	Location      *string  `json:"location"`
	PricePerNight *float64 `json:"pricePerNight" validate:"omitnil,gte=0"`
	BedroomCount  *int     `json:"bedroomCount" validate:"omitnil,gte=0"`
	BathRoomCount *int     `json:"bathRoomCount" validate:"omitnil,gte=0"`
	MaxGuestCount *int     `json:"maxGuestCount" validate:"omitnil,gte=0"`
	Rating        *float64 `json:"rating" validate:"omitnil,gte=0"`
}

func (r UpdatePropertyRequest) fields() map[string]any {
	f := map[string]any{}
	if r.Title != nil {
		f["title"] = *r.Title
	}
	if r.Description != nil {
		f["description"] = *r.Description
	}
	if r.Location != nil {
		f["location"] = *r.Location
	}
	if r.PricePerNight != nil {
		f["price_per_night"] = *r.PricePerNight
	}
	if r.BedroomCount != nil {
		f["bedroom_count"] = *r.BedroomCount
	}
	if r.BathRoomCount != nil {
		f["bath_room_count"] = *r.BathRoomCount
	}
	if r.MaxGuestCount != nil {
		f["max_guest_count"] = *r.MaxGuestCount
	}
	if r.Rating != nil {
		f["rating"] = *r.Rating
	}
	return f
}

// PropertyResponse is the list shape: amenities and reviews are always arrays.
type PropertyResponse struct {
	*domain.Property
	Amenities []domain.Amenity `json:"amenities"`
	Reviews   []domain.Review  `json:"reviews"`
}

type PropertyDetailResponse struct {
	PropertyResponse
	Bookings []domain.Booking `json:"bookings"`
}

func toResponse(p *domain.Property) PropertyResponse {
	return PropertyResponse{
		Property:  p,
		Amenities: orEmpty(p.Amenities),
		Reviews:   orEmpty(p.Reviews),
	}
}

func toDetailResponse(p *domain.Property) PropertyDetailResponse {
	return PropertyDetailResponse{
		PropertyResponse: toResponse(p),
		Bookings:         orEmpty(p.Bookings),
	}
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
