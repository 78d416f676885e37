package dto

import (
	"time"

	"github.com/google/uuid"

	"hotelier/internal/domains/booking/model"
	"hotelier/internal/domains/hotel"
	"hotelier/shared/constant"
	sharedDto "hotelier/shared/dto"
	"hotelier/shared/timezone"
)

type CreateBookingRequest struct {
	RoomNumber int    `json:"room_number" validate:"required,min=1"`
	GuestName  string `json:"guest_name" validate:"required,max=100"`
	GuestEmail string `json:"guest_email" validate:"required,email,max=100"`
	GuestPhone string `json:"guest_phone" validate:"required,max=30"`
	Guests     int    `json:"guests" validate:"required,min=1"`
	CheckIn    string `json:"check_in" validate:"required"`
	CheckOut   string `json:"check_out" validate:"required"`
}

// ToModel builds the booking record for the given room, pricing the stay from
// the room's nightly rate. Dates must already be validated by the service.
func (d CreateBookingRequest) ToModel(room *hotel.Room, checkIn, checkOut time.Time) model.Booking {
	booking := model.Booking{
		ID:         uuid.NewString(),
		GuestName:  d.GuestName,
		GuestEmail: d.GuestEmail,
		GuestPhone: d.GuestPhone,
		RoomNumber: room.Number,
		RoomType:   room.Type,
		Guests:     d.Guests,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Status:     constant.BookingStatusPendingPayment,
	}
	booking.CalculateTotalAmount(room.Rate)
	booking.CreatedAt = timezone.Now()
	booking.CreatedBy = d.GuestName

	return booking
}

type UpdateStatusRequest struct {
	Status string `json:"status" db:"status" validate:"required,max=50"`
}

type RateBookingRequest struct {
	Stars int `json:"stars" validate:"required"`
}

type BookingResponse struct {
	ID          string             `json:"id"`
	GuestName   string             `json:"guest_name"`
	GuestEmail  string             `json:"guest_email"`
	GuestPhone  string             `json:"guest_phone"`
	RoomNumber  int                `json:"room_number"`
	RoomType    string             `json:"room_type"`
	Guests      int                `json:"guests"`
	CheckIn     string             `json:"check_in"`
	CheckOut    string             `json:"check_out"`
	Nights      int                `json:"nights"`
	TotalAmount int64              `json:"total_amount"`
	Status      string             `json:"status"`
	Rating      *int               `json:"rating,omitempty"`
	Metadata    sharedDto.Metadata `json:"metadata"`
}

func (d BookingResponse) FromModel(data model.Booking) BookingResponse {
	metadata := sharedDto.Metadata{}
	metadata.FromModel(data.Metadata)

	return BookingResponse{
		ID:          data.ID,
		GuestName:   data.GuestName,
		GuestEmail:  data.GuestEmail,
		GuestPhone:  data.GuestPhone,
		RoomNumber:  data.RoomNumber,
		RoomType:    data.RoomType,
		Guests:      data.Guests,
		CheckIn:     data.CheckIn.Format(constant.BookingDateFormat),
		CheckOut:    data.CheckOut.Format(constant.BookingDateFormat),
		Nights:      data.Nights(),
		TotalAmount: data.TotalAmount,
		Status:      data.Status,
		Rating:      data.Rating,
		Metadata:    metadata,
	}
}

func (d BookingResponse) FromModels(data []model.Booking) []BookingResponse {
	responses := make([]BookingResponse, 0, len(data))
	for _, booking := range data {
		responses = append(responses, d.FromModel(booking))
	}

	return responses
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	Total     int               `json:"total"`
	TotalPage int               `json:"total_page"`
}

// InvoiceResponse is the confirmation payload shown after a successful
// payment. QRCode carries a base64 encoded PNG of the invoice summary.
type InvoiceResponse struct {
	BookingID   string `json:"booking_id"`
	GuestName   string `json:"guest_name"`
	RoomType    string `json:"room_type"`
	TotalAmount int64  `json:"total_amount"`
	CheckIn     string `json:"check_in"`
	CheckOut    string `json:"check_out"`
	Status      string `json:"status"`
	QRCode      string `json:"qr_code"`
}
