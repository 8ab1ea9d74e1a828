package catalog

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReview(t *testing.T) {
	bookingID := uuid.New()
	tourID := uuid.New()
	customerID := uuid.New()
	vendorID := uuid.New()

	r, err := NewReview(bookingID, tourID, customerID, vendorID, 5, "Incredible guide, flawless logistics.")
	require.NoError(t, err)
	assert.Equal(t, bookingID, r.BookingID)
	assert.Equal(t, tourID, r.TourID)
	assert.Equal(t, 5, r.Rating)
}

func TestNewReview_Validation(t *testing.T) {
	bookingID := uuid.New()
	tourID := uuid.New()
	customerID := uuid.New()
	vendorID := uuid.New()

	tests := []struct {
		name       string
		bookingID  uuid.UUID
		tourID     uuid.UUID
		customerID uuid.UUID
		vendorID   uuid.UUID
		rating     int
		comment    string
	}{
		{"empty booking", uuid.Nil, tourID, customerID, vendorID, 5, ""},
		{"empty tour", bookingID, uuid.Nil, customerID, vendorID, 5, ""},
		{"empty customer", bookingID, tourID, uuid.Nil, vendorID, 5, ""},
		{"empty vendor", bookingID, tourID, customerID, uuid.Nil, 5, ""},
		{"rating too low", bookingID, tourID, customerID, vendorID, 0, ""},
		{"rating too high", bookingID, tourID, customerID, vendorID, 6, ""},
		{"comment too long", bookingID, tourID, customerID, vendorID, 4, strings.Repeat("x", 2001)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewReview(tt.bookingID, tt.tourID, tt.customerID, tt.vendorID, tt.rating, tt.comment)
			assert.Error(t, err)
		})
	}
}
