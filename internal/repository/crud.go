package repository

import (
	"context"

	"gorm.io/gorm"
)

// updateByID writes only the given columns and returns the stored row.
// An empty column set just reads the row back.
func updateByID[T any](ctx context.Context, db *gorm.DB, id string, fields map[string]any) (*T, error) {
	if len(fields) > 0 {
		var model T
		tx := db.WithContext(ctx).Model(&model).Where("id = ?", id).Updates(fields)
		if tx.Error != nil {
			return nil, translate(tx.Error)
		}
		if tx.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}

	var out T
	if err := db.WithContext(ctx).Where("id = ?", id).First(&out).Error; err != nil {
		return nil, translate(err)
	}
	return &out, nil
}

func deleteByID[T any](ctx context.Context, db *gorm.DB, id string) error {
	var model T
	tx := db.WithContext(ctx).Where("id = ?", id).Delete(&model)
	if tx.Error != nil {
		return translate(tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
