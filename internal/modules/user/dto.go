package user

type CreateUserRequest struct {
	Username    string `json:"username" validate:"required"`
	Password    string `json:"password" validate:"required"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	PictureURL  string `json:"pictureUrl"`
}

// UpdateUserRequest only carries the fields present in the body.
type UpdateUserRequest struct {
	Username    *string `json:"username" validate:"omitnil,min=1"`
	Name        *string `json:"name"`
	Email       *string `json:"email"`
	PhoneNumber *string `json:"phoneNumber"`
	PictureURL  *string `json:"pictureUrl"`
}

func (r UpdateUserRequest) fields() map[string]any {
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
	return f
}
