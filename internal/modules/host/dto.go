package host

import "bookingapi/internal/domain"

type CreateHostRequest struct {
	Username    string `json:"username" validate:"required"`
	Password    string `json:"password" validate:"required"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	PictureURL  string `json:"pictureUrl"`
	AboutMe     string `json:"aboutMe"`
}

type UpdateHostRequest struct {
	Username    *string `json:"username" validate:"omitnil,min=1"`
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phoneNumber"`
	PictureURL  *string `json:"pictureUrl"`
	AboutMe     *string `json:"aboutMe"`
}

func (r UpdateHostRequest) fields() map[string]any {
	f := map[string]any{}
	if r.Username != nil {
		f["username"] = *r.Username
	}
	if r.Name != nil {
		f["name"] = *r.Name
	}
	if r.Email != nil {
		f["email"] = *r.Email
	}
	if r.PhoneNumber != nil {
		f["phone_number"] = *r.PhoneNumber
	}
	if r.PictureURL != nil {
		f["picture_url"] = *r.PictureURL
	}
	if r.AboutMe != nil {
		f["about_me"] = *r.AboutMe
	}
	return f
}

// HostResponse always carries the listings array, empty when the host has none.
type HostResponse struct {
	*domain.Host
	Listings []domain.Property `json:"listings"`
}

func toResponse(h *domain.Host) HostResponse {
	listings := h.Listings
	if listings == nil {
		listings = []domain.Property{}
	}
	return HostResponse{Host: h, Listings: listings}
}
