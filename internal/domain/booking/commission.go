package booking

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tourbook/backend/internal/domain/shared"
	"github.com/tourbook/backend/internal/domain/shared/valueobject"
)

// DefaultCommissionRate is the platform take rate applied to confirmed bookings
var DefaultCommissionRate = decimal.NewFromFloat(0.05)

// CommissionPolicy is a versioned snapshot of the platform take rate.
// Commissions store the rate they were computed with so historical records
// survive policy changes.
type CommissionPolicy struct {
	Version int
	Rate    decimal.Decimal
}

// CurrentCommissionPolicy returns the policy in force
func CurrentCommissionPolicy() CommissionPolicy {
	return CommissionPolicy{
		Version: 1,
		Rate:    DefaultCommissionRate,
	}
}

// CommissionStatus represents the payout state of a commission record
type CommissionStatus string

const (
	CommissionStatusPending  CommissionStatus = "PENDING"
	CommissionStatusSettled  CommissionStatus = "SETTLED"
	CommissionStatusReversed CommissionStatus = "REVERSED"
)

// IsValid checks if the commission status is valid
func (s CommissionStatus) IsValid() bool {
	switch s {
	case CommissionStatusPending, CommissionStatusSettled, CommissionStatusReversed:
		return true
	}
	return false
}

// String returns the string representation
func (s CommissionStatus) String() string {
	return string(s)
}

// Commission is the platform's cut of a confirmed booking. Exactly one
// commission exists per booking; the amount is rounded to cents at
// computation time and never recomputed.
type Commission struct {
	shared.BaseAggregateRoot
	BookingID     uuid.UUID
	VendorID      uuid.UUID
	BookingTotal  decimal.Decimal
	Rate          decimal.Decimal
	PolicyVersion int
	Amount        decimal.Decimal
	Status        CommissionStatus
	SettledAt     *time.Time
	ReversedAt    *time.Time
}

// NewCommission computes the commission for a confirmed booking under the
// given policy. amount = round2(total * rate).
func NewCommission(b *Booking, policy CommissionPolicy) (*Commission, error) {
	if b == nil {
		return nil, shared.NewDomainError(shared.CodeInvalidStateTransition, "Booking is required")
	}
	if b.Status != BookingStatusConfirmed {
		return nil, shared.NewDomainError(shared.CodeInvalidStateTransition, "Commission applies to confirmed bookings only")
	}
	if policy.Rate.IsNegative() {
		return nil, shared.NewDomainError("INVALID_RATE", "Commission rate cannot be negative")
	}

	amount := b.GetTotalMoney().Mul(policy.Rate).Round2()

	return &Commission{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		BookingID:         b.ID,
		VendorID:          b.VendorID,
		BookingTotal:      b.TotalAmount,
		Rate:              policy.Rate,
		PolicyVersion:     policy.Version,
		Amount:            amount.Amount(),
		Status:            CommissionStatusPending,
	}, nil
}

// Settle marks the commission as collected from the vendor payout
func (c *Commission) Settle() error {
	if c.Status != CommissionStatusPending {
		return shared.NewDomainError(shared.CodeInvalidStateTransition, "Only pending commissions can settle")
	}
	now := time.Now()
	c.Status = CommissionStatusSettled
	c.SettledAt = &now
	c.UpdatedAt = now
	return nil
}

// Reverse voids the commission after the underlying booking is cancelled
func (c *Commission) Reverse() error {
	if c.Status == CommissionStatusReversed {
		return shared.NewDomainError(shared.CodeInvalidStateTransition, "Commission is already reversed")
	}
	now := time.Now()
	c.Status = CommissionStatusReversed
	c.ReversedAt = &now
	c.UpdatedAt = now
	return nil
}

// GetAmountMoney returns the commission amount as Money
func (c *Commission) GetAmountMoney() valueobject.Money {
	return valueobject.NewMoneyUSD(c.Amount)
}
