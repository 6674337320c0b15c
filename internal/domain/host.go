package domain

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Host struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Username    string `json:"username" gorm:"uniqueIndex;not null"`
	Password    string `json:"password" gorm:"not null"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	PictureURL  string `json:"pictureUrl"`
	AboutMe     string `json:"aboutMe"`

	Listings []Property `json:"listings,omitempty" gorm:"foreignKey:HostID"`
}

func (h *Host) BeforeCreate(*gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}
