package amenity

type CreateAmenityRequest struct {
	Name string `json:"name" validate:"required"`
}

type UpdateAmenityRequest struct {
	Name *string `json:"name" validate:"omitnil,min=1"`
}

func (r UpdateAmenityRequest) fields() map[string]any {
	f := map[string]any{}
	if r.Name != nil {
		f["name"] = *r.Name
	}
	return f
}
