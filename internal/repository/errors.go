package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bookingapi/internal/database"
)

var (
	// ErrNotFound means no row matched the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrForeignKey means a referenced row is missing, or a row is still referenced.
	ErrForeignKey = errors.New("foreign key constraint violated")
	// ErrConflict means a unique column or primary key already holds the value.
	ErrConflict = errors.New("record already exists")
)

// translate maps store errors onto the package sentinels. The driver error
// stays in the chain for logging.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case database.IsForeignKeyViolation(err):
		return fmt.Errorf("%w: %w", ErrForeignKey, err)
	case database.IsUniqueViolation(err):
		return fmt.Errorf("%w: %w", ErrConflict, err)
	default:
		return err
	}
}
