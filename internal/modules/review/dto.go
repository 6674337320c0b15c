package review

type CreateReviewRequest struct {
	UserID     string `json:"userId" validate:"required"`
	PropertyID string `json:"propertyId" validate:"required"`
	Rating     int    `json:"rating" validate:"gte=0,lte=5"`
	Comment    string `json:"comment"`
}

type UpdateReviewRequest struct {
	Rating  *int    `json:"rating" validate:"omitnil,gte=0,lte=5"`
	Comment *string `json:"comment"`
}

func (r UpdateReviewRequest) fields() map[string]any {
	f := map[string]any{}
	if r.Rating != nil {
		f["rating"] = *r.Rating
	}
	if r.Comment != nil {
		f["comment"] = *r.Comment
	}
	return f
}
