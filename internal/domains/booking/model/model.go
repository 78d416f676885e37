package model

import (
	"time"

	"hotelier/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID          = "id"
	FieldGuestName   = "guest_name"
	FieldGuestEmail  = "guest_email"
	FieldGuestPhone  = "guest_phone"
	FieldRoomNumber  = "room_number"
	FieldRoomType    = "room_type"
	FieldGuests      = "guests"
	FieldCheckIn     = "check_in"
	FieldCheckOut    = "check_out"
	FieldTotalAmount = "total_amount"
	FieldStatus      = "status"
	FieldRating      = "rating"
)

// Booking is one reservation for a room type over a date range. The guest
// contact fields are a snapshot taken at booking time and never change.
type Booking struct {
	ID          string    `db:"id"`
	GuestName   string    `db:"guest_name"`
	GuestEmail  string    `db:"guest_email"`
	GuestPhone  string    `db:"guest_phone"`
	RoomNumber  int       `db:"room_number"`
	RoomType    string    `db:"room_type"`
	Guests      int       `db:"guests"`
	CheckIn     time.Time `db:"check_in"`
	CheckOut    time.Time `db:"check_out"`
	TotalAmount int64     `db:"total_amount"`
	Status      string    `db:"status"`
	Rating      *int      `db:"rating"`
	model.Metadata
}

// Nights returns the calendar days between check-in and check-out, clamped to
// a minimum of one night. Same-day or inverted ranges that slip past intake
// validation still price as a single night. The endpoints are normalized to
// midnight UTC so daylight-saving transitions in the booking timezone cannot
// shorten a night.
func (b *Booking) Nights() int {
	checkIn := midnightUTC(b.CheckIn)
	checkOut := midnightUTC(b.CheckOut)

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < 1 {
		nights = 1
	}

	return nights
}

func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// CalculateTotalAmount derives the total from the stay length and the given
// nightly rate, stores it on the booking and returns it.
func (b *Booking) CalculateTotalAmount(nightlyRate int64) int64 {
	b.TotalAmount = int64(b.Nights()) * nightlyRate

	return b.TotalAmount
}
