package services

import (
	"context"
	"errors"
	"testing"

	"hotel-booking/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedSampleData(t *testing.T) {
	db := newTestDB(t)
	svc := NewCatalogService(db)
	ctx := context.Background()

	created, err := svc.SeedSampleData(ctx)
	require.NoError(t, err)
	require.Len(t, created, 4)

	hotels, err := svc.ListHotels(ctx)
	require.NoError(t, err)
	require.Len(t, hotels, 4)

	names := []string{"Hotel A", "Hotel B", "Hotel C", "Hotel D"}
	minPrice, maxPrice := 1e9, 0.0
	for i, h := range hotels {
		assert.Equal(t, names[i], h.Name)
		assert.NotEmpty(t, h.Amenities)
		require.Len(t, h.Rooms, 4)
		for _, r := range h.Rooms {
			if r.Price < minPrice {
				minPrice = r.Price
			}
			if r.Price > maxPrice {
				maxPrice = r.Price
			}
		}
	}
	assert.Equal(t, "101", hotels[0].Rooms[0].Number)
	assert.Equal(t, "404", hotels[3].Rooms[3].Number)
	assert.Equal(t, 100.0, minPrice)
	assert.Equal(t, 280.0, maxPrice)

	nh, nr, err := svc.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), nh)
	assert.Equal(t, int64(16), nr)
}

func TestCatalogNotFound(t *testing.T) {
	svc := NewCatalogService(newTestDB(t))
	ctx := context.Background()

	_, err := svc.GetHotel(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.ListRooms(ctx, 99)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.RoomByNumber(ctx, 99, "101")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.AddRoom(ctx, 99, "101", 10)
	assert.ErrorIs(t, err, ErrNotFound)

	hotels, err := svc.ListHotels(ctx)
	require.NoError(t, err)
	assert.NotNil(t, hotels)
	assert.Empty(t, hotels)
}

func TestCreateHotelAndRooms(t *testing.T) {
	svc := NewCatalogService(newTestDB(t))
	ctx := context.Background()

	wifi, err := svc.CreateAmenity(ctx, "Wi-Fi")
	require.NoError(t, err)
	_, err = svc.CreateAmenity(ctx, "Wi-Fi")
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "name", verr.Field)

	_, err = svc.CreateHotel(ctx, &models.Hotel{Name: "Nowhere"}, []uint{wifi.ID, 999})
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "amenity_ids", verr.Field)

	hotel, err := svc.CreateHotel(ctx, &models.Hotel{
		Name:     "Harbour Inn",
		Location: "Porto",
		RoomType: "Deluxe",
	}, []uint{wifi.ID, wifi.ID})
	require.NoError(t, err)
	require.Len(t, hotel.Amenities, 1)
	assert.Equal(t, "Wi-Fi", hotel.Amenities[0].Name)

	_, err = svc.AddRoom(ctx, hotel.ID, "12", 90)
	require.NoError(t, err)
	_, err = svc.AddRoom(ctx, hotel.ID, "12", 95)
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "number", verr.Field)

	_, err = svc.AddRoom(ctx, hotel.ID, "13", -1)
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "price", verr.Field)

	room, err := svc.RoomByNumber(ctx, hotel.ID, " 12 ")
	require.NoError(t, err)
	assert.Equal(t, 90.0, room.Price)
}
