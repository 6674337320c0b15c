package domain

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Amenity struct {
	ID   string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name string `json:"name" gorm:"not null"`
}

func (a *Amenity) BeforeCreate(*gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
