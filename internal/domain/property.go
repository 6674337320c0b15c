package domain

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Property is a listing owned by a Host. Amenity links and images are removed
// together with the property; bookings and reviews keep it from being deleted.
type Property struct {
	ID            string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	HostID        string  `json:"hostId" gorm:"type:varchar(36);not null;index"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Location      string  `json:"location"`
	PricePerNight float64 `json:"pricePerNight" gorm:"not null;check:price_per_night >= 0"`
	BedroomCount  int     `json:"bedroomCount"`
	BathRoomCount int     `json:"bathRoomCount"`
	MaxGuestCount int     `json:"maxGuestCount"`
	Rating        float64 `json:"rating"`

	Amenities []Amenity `json:"amenities,omitempty" gorm:"many2many:property_amenities;constraint:OnDelete:CASCADE"`
	Images    []Image   `json:"images,omitempty" gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	Bookings  []Booking `json:"bookings,omitempty" gorm:"foreignKey:PropertyID"`
	Reviews   []Review  `json:"reviews,omitempty" gorm:"foreignKey:PropertyID"`
}

func (p *Property) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

type Image struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	PropertyID string `json:"propertyId" gorm:"type:varchar(36);not null;index"`
	URL        string `json:"url" gorm:"not null"`
}

func (i *Image) BeforeCreate(*gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
