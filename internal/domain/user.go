package domain

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a guest account. Password holds a bcrypt hash and is never serialized.
type User struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Username    string `json:"username" gorm:"uniqueIndex;not null"`
	Password    string `json:"-" gorm:"not null"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	PictureURL  string `json:"pictureUrl"`
}

func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
