package repository

import (
	"context"

	"bookingapi/internal/domain"

	"gorm.io/gorm"
)

type HostFilters struct {
	// Name matches as a literal substring, ignoring case.
	Name string
}

type HostRepository struct {
	db *gorm.DB
}

func NewHostRepository(db *gorm.DB) *HostRepository {
	return &HostRepository{db: db}
}

// List returns matching hosts with their listings.
func (r *HostRepository) List(ctx context.Context, f HostFilters) ([]domain.Host, error) {
	q := r.db.WithContext(ctx).Model(&domain.Host{})

	if f.Name != "" {
		q = q.Where(containsClause("name"), containsPattern(f.Name))
	}

	hosts := []domain.Host{}
	if err := q.Preload("Listings").Find(&hosts).Error; err != nil {
		return nil, translate(err)
	}
	return hosts, nil
}

func (r *HostRepository) Create(ctx context.Context, h *domain.Host) error {
	return translate(r.db.WithContext(ctx).Create(h).Error)
}

func (r *HostRepository) GetByID(ctx context.Context, id string) (*domain.Host, error) {
	var h domain.Host
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Preload("Listings").
		First(&h).Error
	if err != nil {
		return nil, translate(err)
	}
	return &h, nil
}

func (r *HostRepository) Update(ctx context.Context, id string, fields map[string]any) (*domain.Host, error) {
	return updateByID[domain.Host](ctx, r.db, id, fields)
}

func (r *HostRepository) Delete(ctx context.Context, id string) error {
	return deleteByID[domain.Host](ctx, r.db, id)
}
