package catalog

import (
	"github.com/google/uuid"

	"github.com/tourbook/backend/internal/domain/shared"
)

// Review is a customer rating for a completed tour. Reviews feed the vendor
// rating aggregate; they carry no lifecycle of their own. Each booking backs
// at most one review, keyed by BookingID.
type Review struct {
	shared.BaseEntity
	BookingID  uuid.UUID
	TourID     uuid.UUID
	CustomerID uuid.UUID
	VendorID   uuid.UUID
	Rating     int
	Comment    string
}

// NewReview creates a new review
func NewReview(bookingID, tourID, customerID, vendorID uuid.UUID, rating int, comment string) (*Review, error) {
	if bookingID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_BOOKING", "Booking ID cannot be empty")
	}
	if tourID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TOUR", "Tour ID cannot be empty")
	}
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if vendorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_VENDOR", "Vendor ID cannot be empty")
	}
	if rating < 1 || rating > 5 {
		return nil, shared.NewDomainError("INVALID_RATING", "Rating must be between 1 and 5")
	}
	if len(comment) > 2000 {
		return nil, shared.NewDomainError("INVALID_COMMENT", "Comment cannot exceed 2000 characters")
	}

	return &Review{
		BaseEntity: shared.NewBaseEntity(),
		BookingID:  bookingID,
		TourID:     tourID,
		CustomerID: customerID,
		VendorID:   vendorID,
		Rating:     rating,
		Comment:    comment,
	}, nil
}
