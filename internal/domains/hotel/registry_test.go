package hotel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelier/config"
	"hotelier/internal/domains/hotel"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Hotel.Name = "Nile View Hotel"
	cfg.Hotel.Address = "Cairo, Egypt"
	cfg.Hotel.Phone = "+20 100 555 7777"

	return cfg
}

func TestNewRegistry(t *testing.T) {
	registry := hotel.NewRegistry(testConfig())

	assert.Equal(t, "Nile View Hotel", registry.Profile.Name)
	assert.Equal(t, "Cairo, Egypt", registry.Profile.Address)

	rooms := registry.Rooms()
	require.Len(t, rooms, 3)
	assert.Equal(t, "Single Room", rooms[0].Type)
	assert.Equal(t, "Double Room", rooms[1].Type)
	assert.Equal(t, "Deluxe Suite", rooms[2].Type)
}

func TestRegistry_RoomByType(t *testing.T) {
	registry := hotel.NewRegistry(testConfig())

	t.Run("finds an exact match", func(t *testing.T) {
		room := registry.RoomByType("Double Room")

		require.NotNil(t, room)
		assert.Equal(t, int64(800), room.Rate)
	})

	t.Run("match is case sensitive", func(t *testing.T) {
		assert.Nil(t, registry.RoomByType("double room"))
	})

	t.Run("returns nil for unknown type", func(t *testing.T) {
		assert.Nil(t, registry.RoomByType("Penthouse"))
	})
}

func TestRegistry_RoomByNumber(t *testing.T) {
	registry := hotel.NewRegistry(testConfig())

	room := registry.RoomByNumber(3)
	require.NotNil(t, room)
	assert.Equal(t, "Deluxe Suite", room.Type)

	assert.Nil(t, registry.RoomByNumber(99))
}

func TestRegistry_AvailableRooms(t *testing.T) {
	registry := hotel.NewRegistry(testConfig())

	single := registry.RoomByType("Single Room")
	require.NotNil(t, single)

	// exhaust the single rooms
	for single.CheckAvailability() {
		require.NoError(t, single.Book())
	}

	available := registry.AvailableRooms()
	require.Len(t, available, 2)
	assert.Equal(t, "Double Room", available[0].Type)
	assert.Equal(t, "Deluxe Suite", available[1].Type)
}

func TestRegistry_AddRoom(t *testing.T) {
	registry := hotel.NewRegistry(testConfig())

	registry.AddRoom(hotel.NewRoom(4, "Family Suite", 1200, "Two connected rooms", 5, 2))

	rooms := registry.Rooms()
	require.Len(t, rooms, 4)
	assert.Equal(t, "Family Suite", rooms[3].Type)
}
