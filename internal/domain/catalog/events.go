package catalog

import (
	"github.com/google/uuid"

	"github.com/tourbook/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeTour = "Tour"

// Event type constants
const (
	EventTypeTourApproved    = "TourApproved"
	EventTypeTourActivated   = "TourActivated"
	EventTypeTourDeactivated = "TourDeactivated"
)

// TourApprovedEvent is raised when moderation approves a tour
type TourApprovedEvent struct {
	shared.BaseDomainEvent
	TourID   uuid.UUID `json:"tour_id"`
	VendorID uuid.UUID `json:"vendor_id"`
	Name     string    `json:"name"`
}

// NewTourApprovedEvent creates a new TourApprovedEvent
func NewTourApprovedEvent(t *Tour) *TourApprovedEvent {
	return &TourApprovedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTourApproved, AggregateTypeTour, t.ID),
		TourID:          t.ID,
		VendorID:        t.VendorID,
		Name:            t.Name,
	}
}

// EventType returns the event type name
func (e *TourApprovedEvent) EventType() string {
	return EventTypeTourApproved
}

// TourActivatedEvent is raised when a tour goes live
type TourActivatedEvent struct {
	shared.BaseDomainEvent
	TourID   uuid.UUID `json:"tour_id"`
	VendorID uuid.UUID `json:"vendor_id"`
}

// NewTourActivatedEvent creates a new TourActivatedEvent
func NewTourActivatedEvent(t *Tour) *TourActivatedEvent {
	return &TourActivatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTourActivated, AggregateTypeTour, t.ID),
		TourID:          t.ID,
		VendorID:        t.VendorID,
	}
}

// EventType returns the event type name
func (e *TourActivatedEvent) EventType() string {
	return EventTypeTourActivated
}

// TourDeactivatedEvent is raised when a tour is taken off sale
type TourDeactivatedEvent struct {
	shared.BaseDomainEvent
	TourID   uuid.UUID `json:"tour_id"`
	VendorID uuid.UUID `json:"vendor_id"`
}

// NewTourDeactivatedEvent creates a new TourDeactivatedEvent
func NewTourDeactivatedEvent(t *Tour) *TourDeactivatedEvent {
	return &TourDeactivatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTourDeactivated, AggregateTypeTour, t.ID),
		TourID:          t.ID,
		VendorID:        t.VendorID,
	}
}

// EventType returns the event type name
func (e *TourDeactivatedEvent) EventType() string {
	return EventTypeTourDeactivated
}
