package seed

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookingapi/internal/domain"
	"bookingapi/internal/pkg/logger"
	"bookingapi/internal/pkg/password"
	"bookingapi/internal/testdb"
)

func TestLoadDatasets_Embedded(t *testing.T) {
	ds, err := LoadDatasets(DefaultData())
	require.NoError(t, err)

	assert.Len(t, ds.Users, 4)
	assert.Len(t, ds.Hosts, 2)
	assert.Len(t, ds.Amenities, 5)
	assert.Len(t, ds.Properties, 3)
	assert.Len(t, ds.Bookings, 3)
	assert.Len(t, ds.Reviews, 3)
	assert.Equal(t, "https://example.com/images/johndoe.jpg", ds.Users[0].ProfilePicture)
	assert.Equal(t, 2023, ds.Bookings[0].CheckinDate.Year())
}

func TestLoadDatasets_Errors(t *testing.T) {
	full := fstest.MapFS{}
	for _, name := range []string{"users", "hosts", "amenities", "properties", "bookings", "reviews"} {
		full[name+".json"] = &fstest.MapFile{Data: []byte(`{"` + name + `": []}`)}
	}

	t.Run("missing file", func(t *testing.T) {
		fsys := fstest.MapFS{}
		for k, v := range full {
			fsys[k] = v
		}
		delete(fsys, "reviews.json")

		_, err := LoadDatasets(fsys)
		assert.ErrorContains(t, err, "reviews.json")
	})

	t.Run("missing wrapper key", func(t *testing.T) {
		fsys := fstest.MapFS{}
		for k, v := range full {
			fsys[k] = v
		}
		fsys["users.json"] = &fstest.MapFile{Data: []byte(`[{"id":"x"}]`)}

		_, err := LoadDatasets(fsys)
		assert.ErrorContains(t, err, "users.json")
	})

	t.Run("all empty", func(t *testing.T) {
		ds, err := LoadDatasets(full)
		require.NoError(t, err)
		assert.Empty(t, ds.Users)
	})
}

func TestLoader_RunTwiceGivesSameCounts(t *testing.T) {
	db := testdb.Open(t)
	l := NewLoader(db, logger.Discard())
	ctx := context.Background()

	first, err := l.Run(ctx, DefaultData())
	require.NoError(t, err)
	assert.Equal(t, Counts{Users: 4, Hosts: 2, Amenities: 5, Properties: 3, Images: 3, Bookings: 3, Reviews: 3}, first)

	second, err := l.Run(ctx, DefaultData())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLoader_InsertWithoutClearFails(t *testing.T) {
	db := testdb.Open(t)
	l := NewLoader(db, logger.Discard())
	ctx := context.Background()

	_, err := l.Run(ctx, DefaultData())
	require.NoError(t, err)

	ds, err := LoadDatasets(DefaultData())
	require.NoError(t, err)

	err = l.Insert(ctx, ds)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Contains(t, err.Error(), "insert users")
}

func TestLoader_LinksAndPasswords(t *testing.T) {
	db := testdb.Open(t)
	l := NewLoader(db, logger.Discard())

	_, err := l.Run(context.Background(), DefaultData())
	require.NoError(t, err)

	var beach domain.Property
	require.NoError(t, db.Preload("Amenities").Preload("Images").
		First(&beach, "id = ?", "c7d8361e-f8da-474a-95c6-d3e4f506172d").Error)
	names := make([]string, 0, len(beach.Amenities))
	for _, a := range beach.Amenities {
		names = append(names, a.Name)
	}
	assert.ElementsMatch(t, []string{"Wifi", "Pool", "Air conditioning"}, names)
	require.Len(t, beach.Images, 1)
	assert.Equal(t, "https://example.com/images/beach-house-1.jpg", beach.Images[0].URL)

	var u domain.User
	require.NoError(t, db.First(&u, "username = ?", "jdoe").Error)
	assert.True(t, password.Matches(u.Password, "password123"))
	assert.Equal(t, "https://example.com/images/johndoe.jpg", u.PictureURL)
}

func TestHashIfPlain_KeepsHashes(t *testing.T) {
	hash, err := password.Hash("pw")
	require.NoError(t, err)

	got, err := hashIfPlain(hash)
	require.NoError(t, err)
	assert.Equal(t, hash, got)

	got, err = hashIfPlain("pw")
	require.NoError(t, err)
	assert.NotEqual(t, "pw", got)
	assert.True(t, password.Matches(got, "pw"))
}
