package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tourbook/backend/internal/domain/catalog"
)

// CreateTourRequest represents a request to create a tour listing
type CreateTourRequest struct {
	Name          string           `json:"name" binding:"required,min=1,max=200"`
	Price         decimal.Decimal  `json:"price" binding:"required"`
	DiscountPrice *decimal.Decimal `json:"discount_price"`
	MaxGuests     int              `json:"max_guests" binding:"required,min=1"`
	DurationDays  int              `json:"duration_days" binding:"required,min=1"`
}

// UpdateDiscountRequest represents a request to set or clear the display discount
type UpdateDiscountRequest struct {
	DiscountPrice *decimal.Decimal `json:"discount_price"`
}

// SubmitReviewRequest represents a customer review submission
type SubmitReviewRequest struct {
	BookingID uuid.UUID `json:"booking_id" binding:"required"`
	Rating    int       `json:"rating" binding:"required,min=1,max=5"`
	Comment   string    `json:"comment" binding:"max=2000"`
}

// TourResponse represents a tour in API responses
type TourResponse struct {
	ID            uuid.UUID        `json:"id"`
	VendorID      uuid.UUID        `json:"vendor_id"`
	Name          string           `json:"name"`
	Price         decimal.Decimal  `json:"price"`
	DiscountPrice *decimal.Decimal `json:"discount_price,omitempty"`
	MaxGuests     int              `json:"max_guests"`
	DurationDays  int              `json:"duration_days"`
	IsActive      bool             `json:"is_active"`
	IsApproved    bool             `json:"is_approved"`
	CreatedAt     time.Time        `json:"created_at"`
}

// ReviewResponse represents a review in API responses
type ReviewResponse struct {
	ID         uuid.UUID `json:"id"`
	BookingID  uuid.UUID `json:"booking_id"`
	TourID     uuid.UUID `json:"tour_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToTourResponse converts a domain tour to a response DTO
func ToTourResponse(t *catalog.Tour) TourResponse {
	return TourResponse{
		ID:            t.ID,
		VendorID:      t.VendorID,
		Name:          t.Name,
		Price:         t.Price,
		DiscountPrice: t.DiscountPrice,
		MaxGuests:     t.MaxGuests,
		DurationDays:  t.DurationDays,
		IsActive:      t.IsActive,
		IsApproved:    t.IsApproved,
		CreatedAt:     t.CreatedAt,
	}
}

// ToReviewResponse converts a domain review to a response DTO
func ToReviewResponse(r *catalog.Review) ReviewResponse {
	return ReviewResponse{
		ID:         r.ID,
		BookingID:  r.BookingID,
		TourID:     r.TourID,
		CustomerID: r.CustomerID,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}
