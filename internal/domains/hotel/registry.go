package hotel

import (
	"sync"

	"hotelier/config"
)

// Profile is the public identity of the property.
type Profile struct {
	Name    string
	Address string
	Phone   string
}

// Registry is the in-memory room inventory. It is constructed once at
// startup and handed to the request-handling layer; it is the longest-lived
// holder of every Room.
type Registry struct {
	Profile Profile

	mu    sync.RWMutex
	rooms []*Room
}

// NewRegistry builds the registry from the configured profile and the fixed
// seed rooms.
func NewRegistry(cfg *config.Config) *Registry {
	registry := &Registry{
		Profile: Profile{
			Name:    cfg.Hotel.Name,
			Address: cfg.Hotel.Address,
			Phone:   cfg.Hotel.Phone,
		},
	}

	for _, room := range SeedRooms() {
		registry.AddRoom(room)
	}

	return registry
}

// AddRoom appends a room to the inventory. The caller guarantees unique
// room numbers.
func (h *Registry) AddRoom(room *Room) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.rooms = append(h.rooms, room)
}

// Rooms returns every room in insertion order.
func (h *Registry) Rooms() []*Room {
	h.mu.RLock()
	defer h.mu.RUnlock()

	rooms := make([]*Room, len(h.rooms))
	copy(rooms, h.rooms)

	return rooms
}

// AvailableRooms returns the rooms with at least one free unit, preserving
// insertion order.
func (h *Registry) AvailableRooms() []*Room {
	h.mu.RLock()
	defer h.mu.RUnlock()

	available := []*Room{}
	for _, room := range h.rooms {
		if room.CheckAvailability() {
			available = append(available, room)
		}
	}

	return available
}

// RoomByType returns the first room whose type name matches exactly,
// case-sensitive, or nil when absent.
func (h *Registry) RoomByType(roomType string) *Room {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, room := range h.rooms {
		if room.Type == roomType {
			return room
		}
	}

	return nil
}

// RoomByNumber returns the room with the given number, or nil when absent.
func (h *Registry) RoomByNumber(number int) *Room {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, room := range h.rooms {
		if room.Number == number {
			return room
		}
	}

	return nil
}
