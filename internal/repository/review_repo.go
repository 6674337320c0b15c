package repository

import (
	"context"

	"bookingapi/internal/domain"

	"gorm.io/gorm"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) List(ctx context.Context) ([]domain.Review, error) {
	reviews := []domain.Review{}
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Property").
		Find(&reviews).Error
	if err != nil {
		return nil, translate(err)
	}
	return reviews, nil
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	return translate(r.db.WithContext(ctx).Create(rv).Error)
}

func (r *ReviewRepository) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	var rv domain.Review
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Preload("User").
		Preload("Property").
		First(&rv).Error
	if err != nil {
		return nil, translate(err)
	}
	return &rv, nil
}

func (r *ReviewRepository) Update(ctx context.Context, id string, fields map[string]any) (*domain.Review, error) {
	return updateByID[domain.Review](ctx, r.db, id, fields)
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	return deleteByID[domain.Review](ctx, r.db, id)
}
