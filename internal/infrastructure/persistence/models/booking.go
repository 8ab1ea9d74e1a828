package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tourbook/backend/internal/domain/booking"
)

// BookingModel is the persistence model for the Booking aggregate.
type BookingModel struct {
	AggregateModel
	CustomerID       uuid.UUID             `gorm:"type:uuid;not null;index"`
	TourID           uuid.UUID             `gorm:"type:uuid;not null;index"`
	VendorID         uuid.UUID             `gorm:"type:uuid;not null;index"`
	Guests           int                   `gorm:"not null"`
	GuestDetails     booking.GuestDetails  `gorm:"type:jsonb;default:'[]'"`
	TourStartDate    time.Time             `gorm:"not null"`
	TotalAmount      decimal.Decimal       `gorm:"type:decimal(18,2);not null"`
	Status           booking.BookingStatus `gorm:"type:varchar(20);not null;index"`
	PaymentStatus    booking.PaymentStatus `gorm:"type:varchar(20);not null"`
	CommissionAmount *decimal.Decimal      `gorm:"type:decimal(18,2)"`
	ConfirmedAt      *time.Time
	CancelledAt      *time.Time
	CompletedAt      *time.Time
}

// TableName returns the table name for GORM
func (BookingModel) TableName() string {
	return "bookings"
}

// ToDomain converts the persistence model to a domain Booking aggregate.
func (m *BookingModel) ToDomain() *booking.Booking {
	return &booking.Booking{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		CustomerID:        m.CustomerID,
		TourID:            m.TourID,
		VendorID:          m.VendorID,
		Guests:            m.Guests,
		GuestDetails:      m.GuestDetails,
		TourStartDate:     m.TourStartDate,
		TotalAmount:       m.TotalAmount,
		Status:            m.Status,
		PaymentStatus:     m.PaymentStatus,
		CommissionAmount:  m.CommissionAmount,
		ConfirmedAt:       m.ConfirmedAt,
		CancelledAt:       m.CancelledAt,
		CompletedAt:       m.CompletedAt,
	}
}

// FromDomain populates the persistence model from a domain Booking aggregate.
func (m *BookingModel) FromDomain(b *booking.Booking) {
	m.FromDomainAggregateRoot(b.BaseAggregateRoot)
	m.CustomerID = b.CustomerID
	m.TourID = b.TourID
	m.VendorID = b.VendorID
	m.Guests = b.Guests
	m.GuestDetails = b.GuestDetails
	m.TourStartDate = b.TourStartDate
	m.TotalAmount = b.TotalAmount
	m.Status = b.Status
	m.PaymentStatus = b.PaymentStatus
	m.CommissionAmount = b.CommissionAmount
	m.ConfirmedAt = b.ConfirmedAt
	m.CancelledAt = b.CancelledAt
	m.CompletedAt = b.CompletedAt
}

// BookingModelFromDomain creates a new persistence model from a domain Booking.
func BookingModelFromDomain(b *booking.Booking) *BookingModel {
	m := &BookingModel{}
	m.FromDomain(b)
	return m
}

// CommissionModel is the persistence model for the Commission aggregate.
// The unique index on booking_id enforces one commission per booking at the
// storage level.
type CommissionModel struct {
	AggregateModel
	BookingID     uuid.UUID                `gorm:"type:uuid;not null;uniqueIndex"`
	VendorID      uuid.UUID                `gorm:"type:uuid;not null;index"`
	BookingTotal  decimal.Decimal          `gorm:"type:decimal(18,2);not null"`
	Rate          decimal.Decimal          `gorm:"type:decimal(6,4);not null"`
	PolicyVersion int                      `gorm:"not null;default:1"`
	Amount        decimal.Decimal          `gorm:"type:decimal(18,2);not null"`
	Status        booking.CommissionStatus `gorm:"type:varchar(20);not null;index"`
	SettledAt     *time.Time
	ReversedAt    *time.Time
}

// TableName returns the table name for GORM
func (CommissionModel) TableName() string {
	return "commissions"
}

// ToDomain converts the persistence model to a domain Commission aggregate.
func (m *CommissionModel) ToDomain() *booking.Commission {
	return &booking.Commission{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		BookingID:         m.BookingID,
		VendorID:          m.VendorID,
		BookingTotal:      m.BookingTotal,
		Rate:              m.Rate,
		PolicyVersion:     m.PolicyVersion,
		Amount:            m.Amount,
		Status:            m.Status,
		SettledAt:         m.SettledAt,
		ReversedAt:        m.ReversedAt,
	}
}

// FromDomain populates the persistence model from a domain Commission.
func (m *CommissionModel) FromDomain(c *booking.Commission) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.BookingID = c.BookingID
	m.VendorID = c.VendorID
	m.BookingTotal = c.BookingTotal
	m.Rate = c.Rate
	m.PolicyVersion = c.PolicyVersion
	m.Amount = c.Amount
	m.Status = c.Status
	m.SettledAt = c.SettledAt
	m.ReversedAt = c.ReversedAt
}

// CommissionModelFromDomain creates a new persistence model from a domain Commission.
func CommissionModelFromDomain(c *booking.Commission) *CommissionModel {
	m := &CommissionModel{}
	m.FromDomain(c)
	return m
}
