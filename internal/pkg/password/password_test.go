package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndMatch(t *testing.T) {
	h, err := Hash("s3cret")
	require.NoError(t, err)

	assert.True(t, IsHash(h))
	assert.True(t, Matches(h, "s3cret"))
	assert.False(t, Matches(h, "S3cret"))
}

func TestIsHash_Plaintext(t *testing.T) {
	assert.False(t, IsHash("password123"))
	assert.False(t, IsHash(""))
}

func TestMatches_PlaintextStored(t *testing.T) {
	assert.False(t, Matches("password123", "password123"))
}
