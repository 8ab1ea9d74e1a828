package booking

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tourbook/backend/internal/domain/catalog"
	"github.com/tourbook/backend/internal/domain/shared"
	"github.com/tourbook/backend/internal/domain/shared/valueobject"
)

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
)

// IsValid checks if the status is valid
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted:
		return true
	}
	return false
}

// String returns the string representation
func (s BookingStatus) String() string {
	return string(s)
}

// IsTerminal returns true if no further transitions are allowed
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCancelled || s == BookingStatusCompleted
}

// CanTransitionTo checks if the transition to the target status is allowed
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	switch s {
	case BookingStatusPending:
		return target == BookingStatusConfirmed || target == BookingStatusCancelled
	case BookingStatusConfirmed:
		return target == BookingStatusCompleted || target == BookingStatusCancelled
	default:
		return false
	}
}

// PaymentStatus represents the settlement state of a booking's payment
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "PENDING"
	PaymentStatusPaid     PaymentStatus = "PAID"
	PaymentStatusRefunded PaymentStatus = "REFUNDED"
)

// IsValid checks if the payment status is valid
func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusPaid, PaymentStatusRefunded:
		return true
	}
	return false
}

// String returns the string representation
func (s PaymentStatus) String() string {
	return string(s)
}

// GuestDetail captures the identity of one traveller on a booking
type GuestDetail struct {
	Name     string `json:"name"`
	Age      int    `json:"age"`
	IDType   string `json:"id_type,omitempty"`
	IDNumber string `json:"id_number,omitempty"`
}

// GuestDetails is a list of guest details stored as JSONB
type GuestDetails []GuestDetail

// Value implements driver.Valuer for GORM to store as JSONB
func (g GuestDetails) Value() (driver.Value, error) {
	if g == nil {
		return "[]", nil
	}
	return json.Marshal(g)
}

// Scan implements sql.Scanner for GORM to read from JSONB
func (g *GuestDetails) Scan(value interface{}) error {
	if value == nil {
		*g = GuestDetails{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported type for GuestDetails: %T", value)
	}

	return json.Unmarshal(bytes, g)
}

// Booking is the aggregate root for a customer's reservation of a tour.
// Booking status and payment status advance independently: payment
// settlement gates confirmation, and refunds are only issued after
// cancellation.
type Booking struct {
	shared.BaseAggregateRoot
	CustomerID       uuid.UUID
	TourID           uuid.UUID
	VendorID         uuid.UUID
	Guests           int
	GuestDetails     GuestDetails
	TourStartDate    time.Time
	TotalAmount      decimal.Decimal
	Status           BookingStatus
	PaymentStatus    PaymentStatus
	CommissionAmount *decimal.Decimal
	ConfirmedAt      *time.Time
	CancelledAt      *time.Time
	CompletedAt      *time.Time
}

// NewBooking creates a booking against a bookable tour. The total is the
// tour price multiplied by the guest count; discount prices are display-only
// and never enter the charge.
func NewBooking(customerID uuid.UUID, tour *catalog.Tour, guests int, guestDetails []GuestDetail, tourStartDate time.Time) (*Booking, error) {
	if customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_CUSTOMER", "Customer ID cannot be empty")
	}
	if tour == nil {
		return nil, shared.NewDomainError(shared.CodeTourUnavailable, "Tour not found")
	}
	if !tour.IsBookable() {
		return nil, shared.NewDomainError(shared.CodeTourUnavailable, "Tour is not open for booking")
	}
	if guests < 1 || guests > tour.MaxGuests {
		return nil, shared.NewDomainError(shared.CodeInvalidGuestCount,
			fmt.Sprintf("Guest count must be between 1 and %d", tour.MaxGuests))
	}
	if len(guestDetails) != guests {
		return nil, shared.NewDomainError(shared.CodeInvalidGuestCount,
			fmt.Sprintf("Expected %d guest details, got %d", guests, len(guestDetails)))
	}
	for i, g := range guestDetails {
		if g.Name == "" {
			return nil, shared.NewDomainError(shared.CodeInvalidGuestCount,
				fmt.Sprintf("Guest %d is missing a name", i+1))
		}
	}
	if tourStartDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_START_DATE", "Tour start date is required")
	}

	b := &Booking{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerID:        customerID,
		TourID:            tour.ID,
		VendorID:          tour.VendorID,
		Guests:            guests,
		GuestDetails:      GuestDetails(guestDetails),
		TourStartDate:     tourStartDate,
		TotalAmount:       tour.TotalFor(guests).Amount(),
		Status:            BookingStatusPending,
		PaymentStatus:     PaymentStatusPending,
	}

	b.AddDomainEvent(NewBookingCreatedEvent(b))

	return b, nil
}

// MarkPaid records payment settlement from the payment provider
func (b *Booking) MarkPaid() error {
	if b.PaymentStatus == PaymentStatusPaid {
		return shared.NewDomainError("ALREADY_PAID", "Booking is already paid")
	}
	if b.PaymentStatus == PaymentStatusRefunded {
		return shared.NewDomainError(shared.CodeInvalidStateTransition, "Cannot pay a refunded booking")
	}
	if b.Status.IsTerminal() {
		return shared.NewDomainError(shared.CodeInvalidStateTransition,
			fmt.Sprintf("Cannot settle payment for a %s booking", b.Status))
	}

	b.PaymentStatus = PaymentStatusPaid
	b.UpdatedAt = time.Now()

	return nil
}

// Confirm moves the booking from PENDING to CONFIRMED. Payment must have
// settled first.
func (b *Booking) Confirm() error {
	if !b.Status.CanTransitionTo(BookingStatusConfirmed) {
		return shared.NewDomainError(shared.CodeInvalidStateTransition,
			fmt.Sprintf("Cannot confirm a %s booking", b.Status))
	}
	if b.PaymentStatus != PaymentStatusPaid {
		return shared.NewDomainError(shared.CodePaymentNotSettled, "Payment has not settled")
	}

	now := time.Now()
	b.Status = BookingStatusConfirmed
	b.ConfirmedAt = &now
	b.UpdatedAt = now

	b.AddDomainEvent(NewBookingConfirmedEvent(b))

	return nil
}

// Cancel moves the booking to CANCELLED from either PENDING or CONFIRMED.
// The event records whether the booking had been confirmed so downstream
// consumers can reverse commission.
func (b *Booking) Cancel(reason string) error {
	if !b.Status.CanTransitionTo(BookingStatusCancelled) {
		return shared.NewDomainError(shared.CodeInvalidStateTransition,
			fmt.Sprintf("Cannot cancel a %s booking", b.Status))
	}

	wasConfirmed := b.Status == BookingStatusConfirmed

	now := time.Now()
	b.Status = BookingStatusCancelled
	b.CancelledAt = &now
	b.UpdatedAt = now

	b.AddDomainEvent(NewBookingCancelledEvent(b, wasConfirmed, reason))

	return nil
}

// Complete moves the booking from CONFIRMED to COMPLETED once the tour
// start date has passed.
func (b *Booking) Complete(now time.Time) error {
	if !b.Status.CanTransitionTo(BookingStatusCompleted) {
		return shared.NewDomainError(shared.CodeInvalidStateTransition,
			fmt.Sprintf("Cannot complete a %s booking", b.Status))
	}
	if now.Before(b.TourStartDate) {
		return shared.NewDomainError(shared.CodeInvalidStateTransition, "Tour has not started yet")
	}

	b.Status = BookingStatusCompleted
	b.CompletedAt = &now
	b.UpdatedAt = now

	b.AddDomainEvent(NewBookingCompletedEvent(b))

	return nil
}

// Refund records a payment refund. Only cancelled, settled bookings refund.
func (b *Booking) Refund() error {
	if b.Status != BookingStatusCancelled {
		return shared.NewDomainError(shared.CodeInvalidStateTransition, "Only cancelled bookings can be refunded")
	}
	if b.PaymentStatus != PaymentStatusPaid {
		return shared.NewDomainError(shared.CodePaymentNotSettled, "No settled payment to refund")
	}

	b.PaymentStatus = PaymentStatusRefunded
	b.UpdatedAt = time.Now()

	return nil
}

// SetCommissionAmount records the commission computed for this booking.
// It may only be set once.
func (b *Booking) SetCommissionAmount(amount valueobject.Money) error {
	if b.CommissionAmount != nil {
		return shared.NewDomainError("COMMISSION_ALREADY_SET", "Commission has already been recorded")
	}
	a := amount.Amount()
	b.CommissionAmount = &a
	b.UpdatedAt = time.Now()
	return nil
}

// GetTotalMoney returns the total amount as Money
func (b *Booking) GetTotalMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(b.TotalAmount)
}
