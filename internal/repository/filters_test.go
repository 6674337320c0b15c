package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookingapi/internal/domain"
	"bookingapi/internal/testdb"
)

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, `%malibu%`, containsPattern("Malibu"))
	assert.Equal(t, `%100\%%`, containsPattern("100%"))
	assert.Equal(t, `%a\_b%`, containsPattern("a_b"))
	assert.Equal(t, `%c:\\temp%`, containsPattern(`C:\temp`))
}

func TestSubstringFilters_AreLiteralAndIgnoreCase(t *testing.T) {
	db := testdb.Open(t)
	ctx := context.Background()

	hosts := NewHostRepository(db)
	host := domain.Host{Username: "h1", Password: "x", Name: "Linda_Smith"}
	require.NoError(t, hosts.Create(ctx, &host))
	require.NoError(t, hosts.Create(ctx, &domain.Host{Username: "h2", Password: "x", Name: "LindaXSmith"}))

	props := NewPropertyRepository(db)
	plain := domain.Property{HostID: host.ID, Title: "Plain", Location: ""}
	percent := domain.Property{HostID: host.ID, Title: "Percent", Location: "100% Malibu"}
	require.NoError(t, props.Create(ctx, &plain))
	require.NoError(t, props.Create(ctx, &percent))

	got, err := props.List(ctx, PropertyFilters{Location: "%"})
	require.NoError(t, err)
	assert.Equal(t, []string{percent.ID}, ids(got))

	got, err = props.List(ctx, PropertyFilters{Location: "MALIBU"})
	require.NoError(t, err)
	assert.Equal(t, []string{percent.ID}, ids(got))

	found, err := hosts.List(ctx, HostFilters{Name: "a_s"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, host.ID, found[0].ID)

	found, err = hosts.List(ctx, HostFilters{Name: "lindax"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "LindaXSmith", found[0].Name)
}
