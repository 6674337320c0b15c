package seed

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"time"
)

//go:embed data/*.json
var embedded embed.FS

// DefaultData returns the datasets compiled into the binary.
func DefaultData() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(err)
	}
	return sub
}

type UserRecord struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	Password       string `json:"password"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	PhoneNumber    string `json:"phoneNumber"`
	ProfilePicture string `json:"profilePicture"`
}

type HostRecord struct {
	UserRecord
	AboutMe string `json:"aboutMe"`
}

type AmenityRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type PropertyRecord struct {
	ID            string   `json:"id"`
	HostID        string   `json:"hostId"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Location      string   `json:"location"`
	PricePerNight float64  `json:"pricePerNight"`
	BedroomCount  int      `json:"bedroomCount"`
	BathRoomCount int      `json:"bathRoomCount"`
	MaxGuestCount int      `json:"maxGuestCount"`
	Rating        float64  `json:"rating"`
	AmenityIDs    []string `json:"amenityIds"`
	Images        []struct {
		URL string `json:"url"`
	} `json:"images"`
}

type BookingRecord struct {
	ID             string    `json:"id"`
	UserID         string    `json:"userId"`
	PropertyID     string    `json:"propertyId"`
	CheckinDate    time.Time `json:"checkinDate"`
	CheckoutDate   time.Time `json:"checkoutDate"`
	NumberOfGuests int       `json:"numberOfGuests"`
	TotalPrice     float64   `json:"totalPrice"`
	BookingStatus  string    `json:"bookingStatus"`
}

type ReviewRecord struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	PropertyID string `json:"propertyId"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
}

// Datasets holds one file's worth of records per entity.
type Datasets struct {
	Users      []UserRecord
	Hosts      []HostRecord
	Amenities  []AmenityRecord
	Properties []PropertyRecord
	Bookings   []BookingRecord
	Reviews    []ReviewRecord
}

// LoadDatasets reads the six dataset files from fsys. Each file wraps its
// records in an object keyed by the entity name, e.g. {"users": [...]}.
func LoadDatasets(fsys fs.FS) (*Datasets, error) {
	var (
		ds  Datasets
		err error
	)
	if ds.Users, err = readWrapped[UserRecord](fsys, "users"); err != nil {
		return nil, err
	}
	if ds.Hosts, err = readWrapped[HostRecord](fsys, "hosts"); err != nil {
		return nil, err
	}
	if ds.Amenities, err = readWrapped[AmenityRecord](fsys, "amenities"); err != nil {
		return nil, err
	}
	if ds.Properties, err = readWrapped[PropertyRecord](fsys, "properties"); err != nil {
		return nil, err
	}
	if ds.Bookings, err = readWrapped[BookingRecord](fsys, "bookings"); err != nil {
		return nil, err
	}
	if ds.Reviews, err = readWrapped[ReviewRecord](fsys, "reviews"); err != nil {
		return nil, err
	}
	return &ds, nil
}

func readWrapped[T any](fsys fs.FS, key string) ([]T, error) {
	name := key + ".json"
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	var wrapper map[string][]T
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}
	records, ok := wrapper[key]
	if !ok {
		return nil, fmt.Errorf("parse %s: missing %q array", name, key)
	}
	return records, nil
}
