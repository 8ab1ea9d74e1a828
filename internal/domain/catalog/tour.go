package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tourbook/backend/internal/domain/shared"
	"github.com/tourbook/backend/internal/domain/shared/valueobject"
)

// Tour represents a bookable tour listing. A tour is only sellable when it is
// both active and approved; only tours in that state occupy a subscription
// quota slot.
type Tour struct {
	shared.BaseAggregateRoot
	VendorID uuid.UUID
	Name     string
	Price    decimal.Decimal
	// DiscountPrice is a secondary display price shown struck-through.
	// It is not required to be lower than Price.
	DiscountPrice *decimal.Decimal
	MaxGuests     int
	DurationDays  int
	IsActive      bool
	IsApproved    bool
	ApprovedAt    *time.Time
}

// NewTour creates a new tour listing. New tours start inactive and
// unapproved; moderation approval and explicit activation make them sellable.
func NewTour(vendorID uuid.UUID, name string, price valueobject.Money, maxGuests, durationDays int) (*Tour, error) {
	if vendorID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_VENDOR", "Vendor ID cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Tour name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_NAME", "Tour name cannot exceed 200 characters")
	}
	if !price.IsPositive() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Tour price must be positive")
	}
	if maxGuests <= 0 {
		return nil, shared.NewDomainError("INVALID_MAX_GUESTS", "Max guests must be positive")
	}
	if durationDays <= 0 {
		return nil, shared.NewDomainError("INVALID_DURATION", "Duration must be at least one day")
	}

	return &Tour{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		VendorID:          vendorID,
		Name:              name,
		Price:             price.Amount(),
		MaxGuests:         maxGuests,
		DurationDays:      durationDays,
		IsActive:          false,
		IsApproved:        false,
	}, nil
}

// SetDiscountPrice sets the secondary display price
func (t *Tour) SetDiscountPrice(price valueobject.Money) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Discount price cannot be negative")
	}
	amount := price.Amount()
	t.DiscountPrice = &amount
	t.UpdatedAt = time.Now()
	return nil
}

// ClearDiscountPrice removes the secondary display price
func (t *Tour) ClearDiscountPrice() {
	t.DiscountPrice = nil
	t.UpdatedAt = time.Now()
}

// Approve flips the platform moderation gate
func (t *Tour) Approve() error {
	if t.IsApproved {
		return shared.NewDomainError("ALREADY_APPROVED", "Tour is already approved")
	}

	now := time.Now()
	t.IsApproved = true
	t.ApprovedAt = &now
	t.UpdatedAt = now

	t.AddDomainEvent(NewTourApprovedEvent(t))

	return nil
}

// Activate marks the tour as live. The quota slot must already have been
// reserved by the caller; an unapproved tour cannot go live.
func (t *Tour) Activate() error {
	if !t.IsApproved {
		return shared.NewDomainError(shared.CodeTourUnavailable, "Tour is not approved")
	}
	if t.IsActive {
		return shared.NewDomainError("ALREADY_ACTIVE", "Tour is already active")
	}

	t.IsActive = true
	t.UpdatedAt = time.Now()

	t.AddDomainEvent(NewTourActivatedEvent(t))

	return nil
}

// Deactivate takes the tour off sale. The caller releases the quota slot.
func (t *Tour) Deactivate() error {
	if !t.IsActive {
		return shared.NewDomainError("NOT_ACTIVE", "Tour is not active")
	}

	t.IsActive = false
	t.UpdatedAt = time.Now()

	t.AddDomainEvent(NewTourDeactivatedEvent(t))

	return nil
}

// IsBookable returns true if customers can create bookings for this tour
func (t *Tour) IsBookable() bool {
	return t.IsActive && t.IsApproved
}

// GetPriceMoney returns the price as Money value object
func (t *Tour) GetPriceMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(t.Price)
}

// TotalFor returns the total amount for the given guest count
func (t *Tour) TotalFor(guests int) valueobject.Money {
	return t.GetPriceMoney().MulInt(int64(guests))
}
