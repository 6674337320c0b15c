package telemetry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"bookingapi/internal/pkg/logger"
)

func TestNew_WithoutDSNIsLogOnly(t *testing.T) {
	r := New("", "test", logger.Discard())

	assert.False(t, r.Enabled())
	assert.NotPanics(t, func() {
		r.Report(context.Background(), errors.New("boom"), map[string]string{"route": "/api/users"})
		r.Flush(time.Millisecond)
	})
}

func TestNew_BadDSNIsNotFatal(t *testing.T) {
	r := New("not a dsn", "test", logger.Discard())
	assert.False(t, r.Enabled())
}
