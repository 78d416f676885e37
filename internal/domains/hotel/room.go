package hotel

import (
	"math"
	"sync"

	"hotelier/shared/constant"
	"hotelier/shared/failure"
)

// Room is one bookable room type: a pooled count of identical units rather
// than individually addressable rooms. The counter and the ratings list are
// runtime state only and are never persisted.
type Room struct {
	Number       int
	Type         string
	Rate         int64
	Description  string
	MaxOccupancy int

	mu        sync.Mutex
	available int
	ratings   []int
}

func NewRoom(number int, roomType string, rate int64, description string, maxOccupancy, units int) *Room {
	return &Room{
		Number:       number,
		Type:         roomType,
		Rate:         rate,
		Description:  description,
		MaxOccupancy: maxOccupancy,
		available:    units,
	}
}

// Available returns the remaining bookable unit count.
func (r *Room) Available() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.available
}

// CheckAvailability reports whether at least one unit remains.
func (r *Room) CheckAvailability() bool {
	return r.Available() > 0
}

// Book takes one unit out of the pool. The check and the decrement happen
// under one lock so two concurrent bookings cannot both take the last unit.
func (r *Room) Book() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.available <= 0 {
		return failure.Conflict("no available units for this room") //nolint:wrapcheck
	}

	r.available--

	return nil
}

// Release returns one unit to the pool unconditionally.
func (r *Room) Release() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.available++
}

// AddRating records a guest rating. Values outside 1..5 are rejected and
// leave the recorded ratings unchanged.
func (r *Room) AddRating(stars int) error {
	if stars < constant.RatingMin || stars > constant.RatingMax {
		return failure.BadRequestFromString("rating must be between 1 and 5") //nolint:wrapcheck
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.ratings = append(r.ratings, stars)

	return nil
}

// AverageRating returns the mean recorded rating rounded to one decimal
// place, or 0 when the room has no ratings yet.
func (r *Room) AverageRating() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.ratings) == 0 {
		return 0
	}

	sum := 0
	for _, stars := range r.ratings {
		sum += stars
	}

	mean := float64(sum) / float64(len(r.ratings))

	return math.Round(mean*10) / 10
}
