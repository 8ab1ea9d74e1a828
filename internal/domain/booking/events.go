package booking

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tourbook/backend/internal/domain/shared"
)

// Aggregate type constants
const (
	AggregateTypeBooking    = "Booking"
	AggregateTypeCommission = "Commission"
)

// Event type constants
const (
	EventTypeBookingCreated       = "BookingCreated"
	EventTypeBookingConfirmed     = "BookingConfirmed"
	EventTypeBookingCancelled     = "BookingCancelled"
	EventTypeBookingCompleted     = "BookingCompleted"
	EventTypeCommissionCalculated = "CommissionCalculated"
)

// BookingCreatedEvent is raised when a customer places a booking
type BookingCreatedEvent struct {
	shared.BaseDomainEvent
	BookingID   uuid.UUID       `json:"booking_id"`
	CustomerID  uuid.UUID       `json:"customer_id"`
	TourID      uuid.UUID       `json:"tour_id"`
	VendorID    uuid.UUID       `json:"vendor_id"`
	Guests      int             `json:"guests"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// NewBookingCreatedEvent creates a new BookingCreatedEvent
func NewBookingCreatedEvent(b *Booking) *BookingCreatedEvent {
	return &BookingCreatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBookingCreated, AggregateTypeBooking, b.ID),
		BookingID:       b.ID,
		CustomerID:      b.CustomerID,
		TourID:          b.TourID,
		VendorID:        b.VendorID,
		Guests:          b.Guests,
		TotalAmount:     b.TotalAmount,
	}
}

// EventType returns the event type name
func (e *BookingCreatedEvent) EventType() string {
	return EventTypeBookingCreated
}

// BookingConfirmedEvent is raised when a paid booking is confirmed.
// The commission handler consumes it.
type BookingConfirmedEvent struct {
	shared.BaseDomainEvent
	BookingID   uuid.UUID       `json:"booking_id"`
	CustomerID  uuid.UUID       `json:"customer_id"`
	TourID      uuid.UUID       `json:"tour_id"`
	VendorID    uuid.UUID       `json:"vendor_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// NewBookingConfirmedEvent creates a new BookingConfirmedEvent
func NewBookingConfirmedEvent(b *Booking) *BookingConfirmedEvent {
	return &BookingConfirmedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBookingConfirmed, AggregateTypeBooking, b.ID),
		BookingID:       b.ID,
		CustomerID:      b.CustomerID,
		TourID:          b.TourID,
		VendorID:        b.VendorID,
		TotalAmount:     b.TotalAmount,
	}
}

// EventType returns the event type name
func (e *BookingConfirmedEvent) EventType() string {
	return EventTypeBookingConfirmed
}

// BookingCancelledEvent is raised when a booking is cancelled.
// WasConfirmed tells consumers whether a commission may need reversal.
type BookingCancelledEvent struct {
	shared.BaseDomainEvent
	BookingID    uuid.UUID `json:"booking_id"`
	CustomerID   uuid.UUID `json:"customer_id"`
	TourID       uuid.UUID `json:"tour_id"`
	VendorID     uuid.UUID `json:"vendor_id"`
	WasConfirmed bool      `json:"was_confirmed"`
	Reason       string    `json:"reason"`
}

// NewBookingCancelledEvent creates a new BookingCancelledEvent
func NewBookingCancelledEvent(b *Booking, wasConfirmed bool, reason string) *BookingCancelledEvent {
	return &BookingCancelledEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBookingCancelled, AggregateTypeBooking, b.ID),
		BookingID:       b.ID,
		CustomerID:      b.CustomerID,
		TourID:          b.TourID,
		VendorID:        b.VendorID,
		WasConfirmed:    wasConfirmed,
		Reason:          reason,
	}
}

// EventType returns the event type name
func (e *BookingCancelledEvent) EventType() string {
	return EventTypeBookingCancelled
}

// BookingCompletedEvent is raised when the tour took place
type BookingCompletedEvent struct {
	shared.BaseDomainEvent
	BookingID  uuid.UUID `json:"booking_id"`
	CustomerID uuid.UUID `json:"customer_id"`
	TourID     uuid.UUID `json:"tour_id"`
	VendorID   uuid.UUID `json:"vendor_id"`
}

// NewBookingCompletedEvent creates a new BookingCompletedEvent
func NewBookingCompletedEvent(b *Booking) *BookingCompletedEvent {
	return &BookingCompletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeBookingCompleted, AggregateTypeBooking, b.ID),
		BookingID:       b.ID,
		CustomerID:      b.CustomerID,
		TourID:          b.TourID,
		VendorID:        b.VendorID,
	}
}

// EventType returns the event type name
func (e *BookingCompletedEvent) EventType() string {
	return EventTypeBookingCompleted
}

// CommissionCalculatedEvent is raised when a commission record is created
type CommissionCalculatedEvent struct {
	shared.BaseDomainEvent
	CommissionID uuid.UUID       `json:"commission_id"`
	BookingID    uuid.UUID       `json:"booking_id"`
	VendorID     uuid.UUID       `json:"vendor_id"`
	Amount       decimal.Decimal `json:"amount"`
	Rate         decimal.Decimal `json:"rate"`
}

// NewCommissionCalculatedEvent creates a new CommissionCalculatedEvent
func NewCommissionCalculatedEvent(c *Commission) *CommissionCalculatedEvent {
	return &CommissionCalculatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeCommissionCalculated, AggregateTypeCommission, c.ID),
		CommissionID:    c.ID,
		BookingID:       c.BookingID,
		VendorID:        c.VendorID,
		Amount:          c.Amount,
		Rate:            c.Rate,
	}
}

// EventType returns the event type name
func (e *CommissionCalculatedEvent) EventType() string {
	return EventTypeCommissionCalculated
}
