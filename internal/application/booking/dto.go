package booking

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tourbook/backend/internal/domain/booking"
)

// CreateBookingRequest represents a request to book a tour
type CreateBookingRequest struct {
	TourID        uuid.UUID            `json:"tour_id" binding:"required"`
	Guests        int                  `json:"guests" binding:"required,min=1"`
	GuestDetails  []GuestDetailInput   `json:"guest_details" binding:"required,min=1,dive"`
	TourStartDate time.Time            `json:"tour_start_date" binding:"required"`
}

// GuestDetailInput represents one traveller in the create request
type GuestDetailInput struct {
	Name     string `json:"name" binding:"required,min=1,max=200"`
	Age      int    `json:"age" binding:"min=0,max=130"`
	IDType   string `json:"id_type" binding:"omitempty,oneof=passport national_id driver_license"`
	IDNumber string `json:"id_number" binding:"max=50"`
}

// CancelBookingRequest represents a request to cancel a booking
type CancelBookingRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

// BookingResponse represents a booking in API responses
type BookingResponse struct {
	ID               uuid.UUID        `json:"id"`
	CustomerID       uuid.UUID        `json:"customer_id"`
	TourID           uuid.UUID        `json:"tour_id"`
	VendorID         uuid.UUID        `json:"vendor_id"`
	Guests           int              `json:"guests"`
	TourStartDate    time.Time        `json:"tour_start_date"`
	TotalAmount      decimal.Decimal  `json:"total_amount"`
	Status           string           `json:"status"`
	PaymentStatus    string           `json:"payment_status"`
	CommissionAmount *decimal.Decimal `json:"commission_amount,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
}

// CommissionResponse represents a commission in API responses
type CommissionResponse struct {
	ID            uuid.UUID       `json:"id"`
	BookingID     uuid.UUID       `json:"booking_id"`
	VendorID      uuid.UUID       `json:"vendor_id"`
	BookingTotal  decimal.Decimal `json:"booking_total"`
	Rate          decimal.Decimal `json:"rate"`
	PolicyVersion int             `json:"policy_version"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
}

// ToBookingResponse converts a domain booking to a response DTO
func ToBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:               b.ID,
		CustomerID:       b.CustomerID,
		TourID:           b.TourID,
		VendorID:         b.VendorID,
		Guests:           b.Guests,
		TourStartDate:    b.TourStartDate,
		TotalAmount:      b.TotalAmount,
		Status:           b.Status.String(),
		PaymentStatus:    b.PaymentStatus.String(),
		CommissionAmount: b.CommissionAmount,
		CreatedAt:        b.CreatedAt,
	}
}

// ToCommissionResponse converts a domain commission to a response DTO
func ToCommissionResponse(c *booking.Commission) CommissionResponse {
	return CommissionResponse{
		ID:            c.ID,
		BookingID:     c.BookingID,
		VendorID:      c.VendorID,
		BookingTotal:  c.BookingTotal,
		Rate:          c.Rate,
		PolicyVersion: c.PolicyVersion,
		Amount:        c.Amount,
		Status:        c.Status.String(),
	}
}

// ToGuestDetails converts request inputs to domain guest details
func ToGuestDetails(inputs []GuestDetailInput) []booking.GuestDetail {
	details := make([]booking.GuestDetail, len(inputs))
	for i, in := range inputs {
		details[i] = booking.GuestDetail{
			Name:     in.Name,
			Age:      in.Age,
			IDType:   in.IDType,
			IDNumber: in.IDNumber,
		}
	}
	return details
}
