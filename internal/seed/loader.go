// Package seed replaces the store contents with a known dataset.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"bookingapi/internal/domain"
	"bookingapi/internal/pkg/password"
	"bookingapi/internal/repository"
)

// ErrDuplicateID wraps unique violations during Insert.
var ErrDuplicateID = errors.New("duplicate ids in the datasets, or the store was not cleared")

// clearOrder lists tables children first so no delete trips a foreign key.
var clearOrder = []string{
	"reviews",
	"bookings",
	"images",
	"property_amenities",
	"properties",
	"amenities",
	"hosts",
	"users",
}

type Counts struct {
	Users      int64 `json:"users"`
	Hosts      int64 `json:"hosts"`
	Amenities  int64 `json:"amenities"`
	Properties int64 `json:"properties"`
	Images     int64 `json:"images"`
	Bookings   int64 `json:"bookings"`
	Reviews    int64 `json:"reviews"`
}

type Loader struct {
	db         *gorm.DB
	log        *logrus.Logger
	users      *repository.UserRepository
	hosts      *repository.HostRepository
	amenities  *repository.AmenityRepository
	properties *repository.PropertyRepository
	bookings   *repository.BookingRepository
	reviews    *repository.ReviewRepository
}

func NewLoader(db *gorm.DB, log *logrus.Logger) *Loader {
	return &Loader{
		db:         db,
		log:        log,
		users:      repository.NewUserRepository(db),
		hosts:      repository.NewHostRepository(db),
		amenities:  repository.NewAmenityRepository(db),
		properties: repository.NewPropertyRepository(db),
		bookings:   repository.NewBookingRepository(db),
		reviews:    repository.NewReviewRepository(db),
	}
}

// Run loads the datasets from fsys, clears the store and inserts them.
func (l *Loader) Run(ctx context.Context, fsys fs.FS) (Counts, error) {
	ds, err := LoadDatasets(fsys)
	if err != nil {
		return Counts{}, err
	}
	l.log.WithFields(logrus.Fields{
		"users":      len(ds.Users),
		"hosts":      len(ds.Hosts),
		"amenities":  len(ds.Amenities),
		"properties": len(ds.Properties),
		"bookings":   len(ds.Bookings),
		"reviews":    len(ds.Reviews),
	}).Info("datasets loaded")

	if err := l.Clear(ctx); err != nil {
		return Counts{}, err
	}
	if err := l.Insert(ctx, ds); err != nil {
		return Counts{}, err
	}
	return l.Count(ctx)
}

// Clear deletes every row of every entity table.
func (l *Loader) Clear(ctx context.Context) error {
	err := l.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range clearOrder {
			if err := tx.Exec("DELETE FROM " + table).Error; err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	l.log.Info("database cleared")
	return nil
}

// Insert creates the records parents first. Records of one entity are
// created concurrently and the next entity starts once all of them finished.
func (l *Loader) Insert(ctx context.Context, ds *Datasets) error {
	steps := []struct {
		name string
		run  func(context.Context, *errgroup.Group)
	}{
		{"users", func(ctx context.Context, g *errgroup.Group) {
			for _, r := range ds.Users {
				g.Go(func() error { return l.insertUser(ctx, r) })
			}
		}},
		{"hosts", func(ctx context.Context, g *errgroup.Group) {
			for _, r := range ds.Hosts {
				g.Go(func() error { return l.insertHost(ctx, r) })
			}
		}},
		{"amenities", func(ctx context.Context, g *errgroup.Group) {
			for _, r := range ds.Amenities {
				g.Go(func() error {
					return l.amenities.Create(ctx, &domain.Amenity{ID: r.ID, Name: r.Name})
				})
			}
		}},
		{"properties", func(ctx context.Context, g *errgroup.Group) {
			for _, r := range ds.Properties {
				g.Go(func() error { return l.properties.Create(ctx, toProperty(r)) })
			}
		}},
		{"bookings", func(ctx context.Context, g *errgroup.Group) {
			for _, r := range ds.Bookings {
				g.Go(func() error {
					return l.bookings.Create(ctx, &domain.Booking{
						ID:             r.ID,
						UserID:         r.UserID,
						PropertyID:     r.PropertyID,
						CheckinDate:    r.CheckinDate,
						CheckoutDate:   r.CheckoutDate,
						NumberOfGuests: r.NumberOfGuests,
						TotalPrice:     r.TotalPrice,
						BookingStatus:  r.BookingStatus,
					})
				})
			}
		}},
		{"reviews", func(ctx context.Context, g *errgroup.Group) {
			for _, r := range ds.Reviews {
				g.Go(func() error {
					return l.reviews.Create(ctx, &domain.Review{
						ID:         r.ID,
						UserID:     r.UserID,
						PropertyID: r.PropertyID,
						Rating:     r.Rating,
						Comment:    r.Comment,
					})
				})
			}
		}},
	}

	for _, step := range steps {
		g, gctx := errgroup.WithContext(ctx)
		step.run(gctx, g)
		if err := g.Wait(); err != nil {
			if errors.Is(err, repository.ErrConflict) {
				return fmt.Errorf("insert %s: %w: %w", step.name, ErrDuplicateID, err)
			}
			return fmt.Errorf("insert %s: %w", step.name, err)
		}
		l.log.WithField("entity", step.name).Info("records created")
	}
	return nil
}

// Count reports the number of stored rows per entity.
func (l *Loader) Count(ctx context.Context) (Counts, error) {
	var c Counts
	db := l.db.WithContext(ctx)
	for _, q := range []struct {
		model any
		dst   *int64
	}{
		{&domain.User{}, &c.Users},
		{&domain.Host{}, &c.Hosts},
		{&domain.Amenity{}, &c.Amenities},
		{&domain.Property{}, &c.Properties},
		{&domain.Image{}, &c.Images},
		{&domain.Booking{}, &c.Bookings},
		{&domain.Review{}, &c.Reviews},
	} {
		if err := db.Model(q.model).Count(q.dst).Error; err != nil {
			return Counts{}, err
		}
	}
	return c, nil
}

func (l *Loader) insertUser(ctx context.Context, r UserRecord) error {
	hash, err := hashIfPlain(r.Password)
	if err != nil {
		return err
	}
	return l.users.Create(ctx, &domain.User{
		ID:          r.ID,
		Username:    r.Username,
		Password:    hash,
		Name:        r.Name,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		PictureURL:  r.ProfilePicture,
	})
}

func (l *Loader) insertHost(ctx context.Context, r HostRecord) error {
	hash, err := hashIfPlain(r.Password)
	if err != nil {
		return err
	}
	return l.hosts.Create(ctx, &domain.Host{
		ID:          r.ID,
		Username:    r.Username,
		Password:    hash,
		Name:        r.Name,
		Email:       r.Email,
		PhoneNumber: r.PhoneNumber,
		PictureURL:  r.ProfilePicture,
		AboutMe:     r.AboutMe,
	})
}

func toProperty(r PropertyRecord) *domain.Property {
	p := &domain.Property{
		ID:            r.ID,
		HostID:        r.HostID,
		Title:         r.Title,
		Description:   r.Description,
		Location:      r.Location,
		PricePerNight: r.PricePerNight,
		BedroomCount:  r.BedroomCount,
		BathRoomCount: r.BathRoomCount,
		MaxGuestCount: r.MaxGuestCount,
		Rating:        r.Rating,
	}
	for _, id := range r.AmenityIDs {
		p.Amenities = append(p.Amenities, domain.Amenity{ID: id})
	}
	for _, img := range r.Images {
		p.Images = append(p.Images, domain.Image{URL: img.URL})
	}
	return p
}

func hashIfPlain(pw string) (string, error) {
	if password.IsHash(pw) {
		return pw, nil
	}
	hash, err := password.Hash(pw)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return hash, nil
}
