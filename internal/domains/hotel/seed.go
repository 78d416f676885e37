package hotel

// SeedRooms returns the fixed room inventory created at process start.
// Rates are in whole EGP per night.
func SeedRooms() []*Room {
	return []*Room{
		NewRoom(1, "Single Room", 500, "Cozy single room", 1, 5),
		NewRoom(2, "Double Room", 800, "Perfect for couples", 2, 3),
		NewRoom(3, "Deluxe Suite", 1500, "Nile view luxury suite", 4, 2),
	}
}
