package domain

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID     string `json:"userId" gorm:"type:varchar(36);not null;index"`
	PropertyID string `json:"propertyId" gorm:"type:varchar(36);not null;index"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`

	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Property *Property `json:"property,omitempty" gorm:"foreignKey:PropertyID"`
}

func (r *Review) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
