package invoice_test

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelier/internal/domains/invoice"
)

func sampleDetails() invoice.Details {
	return invoice.Details{
		BookingID:   "2fca9df1-7b83-4a6e-9c3e-2a45a83a3f61",
		GuestName:   "Salma Hassan",
		RoomType:    "Deluxe Suite",
		TotalAmount: 6000,
		CheckIn:     "2026-09-01",
		CheckOut:    "2026-09-05",
	}
}

func TestDetails_Summary(t *testing.T) {
	summary := sampleDetails().Summary()

	assert.Contains(t, summary, "Booking Invoice")
	assert.Contains(t, summary, "Name: Salma Hassan")
	assert.Contains(t, summary, "Booking ID: 2fca9df1-7b83-4a6e-9c3e-2a45a83a3f61")
	assert.Contains(t, summary, "Room: Deluxe Suite")
	assert.Contains(t, summary, "Total: 6000 EGP")
	assert.Contains(t, summary, "Check-in: 2026-09-01")
	assert.Contains(t, summary, "Check-out: 2026-09-05")
}

func TestGenerator_Generate(t *testing.T) {
	generator := invoice.NewGenerator()

	encoded, err := generator.Generate(sampleDetails())
	require.NoError(t, err)
	require.NotEmpty(t, encoded)

	raw, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}
