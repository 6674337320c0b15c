package database

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm translated", gorm.ErrDuplicatedKey, true},
		{"postgres", &pgconn.PgError{Code: "23505"}, true},
		{"postgres wrapped", fmt.Errorf("create: %w", &pgconn.PgError{Code: "23505"}), true},
		{"postgres other code", &pgconn.PgError{Code: "23503"}, false},
		{"sqlite", errors.New("constraint failed: UNIQUE constraint failed: users.id (1555)"), true},
		{"unrelated", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUniqueViolation(tt.err))
		})
	}
}

func TestIsForeignKeyViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"gorm translated", gorm.ErrForeignKeyViolated, true},
		{"postgres", &pgconn.PgError{Code: "23503"}, true},
		{"sqlite", errors.New("constraint failed: FOREIGN KEY constraint failed (787)"), true},
		{"unique is not fk", errors.New("UNIQUE constraint failed: users.username"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsForeignKeyViolation(tt.err))
		})
	}
}

func TestWithSQLitePragmas(t *testing.T) {
	assert.Equal(t, "app.db?"+sqlitePragmas, withSQLitePragmas("app.db"))
	assert.Equal(t, "file:app.db?mode=rwc&"+sqlitePragmas, withSQLitePragmas("file:app.db?mode=rwc"))
	assert.Equal(t, "app.db?_pragma=foreign_keys(0)", withSQLitePragmas("app.db?_pragma=foreign_keys(0)"))
}
