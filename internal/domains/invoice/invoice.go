// Package invoice renders booking invoices as QR codes so guests can keep a
// scannable proof of payment.
package invoice

import (
	"encoding/base64"
	"fmt"

	"github.com/pkg/errors"
	qrcode "github.com/skip2/go-qrcode"
)

const qrSize = 256

// Details holds the fields printed on the invoice.
type Details struct {
	BookingID   string
	GuestName   string
	RoomType    string
	TotalAmount int64
	CheckIn     string
	CheckOut    string
}

// Summary returns the plain text block encoded into the QR image.
func (d Details) Summary() string {
	return fmt.Sprintf(
		"Booking Invoice\nName: %s\nBooking ID: %s\nRoom: %s\nTotal: %d EGP\nCheck-in: %s\nCheck-out: %s",
		d.GuestName, d.BookingID, d.RoomType, d.TotalAmount, d.CheckIn, d.CheckOut,
	)
}

type Generator interface {
	Generate(details Details) (string, error)
}

type generatorImpl struct{}

func NewGenerator() Generator {
	return &generatorImpl{}
}

// Generate encodes the invoice summary as a PNG QR code and returns it base64
// encoded, ready to embed in a data URI.
func (g *generatorImpl) Generate(details Details) (string, error) {
	png, err := qrcode.Encode(details.Summary(), qrcode.Medium, qrSize)
	if err != nil {
		return "", errors.Wrap(err, "encode invoice qr")
	}

	return base64.StdEncoding.EncodeToString(png), nil
}
