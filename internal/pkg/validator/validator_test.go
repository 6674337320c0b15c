package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name  string   `json:"name" validate:"required"`
	Price *float64 `json:"pricePerNight" validate:"omitempty,gte=0"`
}

func TestValidate(t *testing.T) {
	neg := -1.0
	ok := 10.0

	assert.Nil(t, Validate(sample{Name: "x"}))
	assert.Nil(t, Validate(sample{Name: "x", Price: &ok}))
	assert.Equal(t, map[string]string{"name": "required"}, Validate(sample{}))
	assert.Equal(t, map[string]string{"pricePerNight": "gte"}, Validate(sample{Name: "x", Price: &neg}))
}
