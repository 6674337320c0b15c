package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status values seen in the data. The API stores whatever string it is given.
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCancelled = "cancelled"
)

type Booking struct {
	ID             string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID         string    `json:"userId" gorm:"type:varchar(36);not null;index"`
	PropertyID     string    `json:"propertyId" gorm:"type:varchar(36);not null;index"`
	CheckinDate    time.Time `json:"checkinDate"`
	CheckoutDate   time.Time `json:"checkoutDate"`
	NumberOfGuests int       `json:"numberOfGuests"`
	TotalPrice     float64   `json:"totalPrice"`
	BookingStatus  string    `json:"bookingStatus"`

	User     *User     `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Property *Property `json:"property,omitempty" gorm:"foreignKey:PropertyID"`
}

func (b *Booking) BeforeCreate(*gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
