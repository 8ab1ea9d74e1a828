package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tourbook/backend/internal/domain/catalog"
)

// TourModel is the persistence model for the Tour aggregate.
type TourModel struct {
	AggregateModel
	VendorID      uuid.UUID        `gorm:"type:uuid;not null;index"`
	Name          string           `gorm:"type:varchar(200);not null"`
	Price         decimal.Decimal  `gorm:"type:decimal(18,2);not null"`
	DiscountPrice *decimal.Decimal `gorm:"type:decimal(18,2)"`
	MaxGuests     int              `gorm:"not null"`
	DurationDays  int              `gorm:"not null"`
	IsActive      bool             `gorm:"not null;default:false;index"`
	IsApproved    bool             `gorm:"not null;default:false"`
	ApprovedAt    *time.Time
}

// TableName returns the table name for GORM
func (TourModel) TableName() string {
	return "tours"
}

// ToDomain converts the persistence model to a domain Tour aggregate.
func (m *TourModel) ToDomain() *catalog.Tour {
	return &catalog.Tour{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		VendorID:          m.VendorID,
		Name:              m.Name,
		Price:             m.Price,
		DiscountPrice:     m.DiscountPrice,
		MaxGuests:         m.MaxGuests,
		DurationDays:      m.DurationDays,
		IsActive:          m.IsActive,
		IsApproved:        m.IsApproved,
		ApprovedAt:        m.ApprovedAt,
	}
}

// FromDomain populates the persistence model from a domain Tour aggregate.
func (m *TourModel) FromDomain(t *catalog.Tour) {
	m.FromDomainAggregateRoot(t.BaseAggregateRoot)
	m.VendorID = t.VendorID
	m.Name = t.Name
	m.Price = t.Price
	m.DiscountPrice = t.DiscountPrice
	m.MaxGuests = t.MaxGuests
	m.DurationDays = t.DurationDays
	m.IsActive = t.IsActive
	m.IsApproved = t.IsApproved
	m.ApprovedAt = t.ApprovedAt
}

// TourModelFromDomain creates a new persistence model from a domain Tour.
func TourModelFromDomain(t *catalog.Tour) *TourModel {
	m := &TourModel{}
	m.FromDomain(t)
	return m
}

// ReviewModel is the persistence model for the Review entity.
type ReviewModel struct {
	BaseModel
	BookingID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_reviews_booking_id"`
	TourID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	VendorID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Rating     int       `gorm:"not null"`
	Comment    string    `gorm:"type:varchar(2000)"`
}

// TableName returns the table name for GORM
func (ReviewModel) TableName() string {
	return "reviews"
}

// ToDomain converts the persistence model to a domain Review entity.
func (m *ReviewModel) ToDomain() *catalog.Review {
	return &catalog.Review{
		BaseEntity: m.BaseModel.ToDomain(),
		BookingID:  m.BookingID,
		TourID:     m.TourID,
		CustomerID: m.CustomerID,
		VendorID:   m.VendorID,
		Rating:     m.Rating,
		Comment:    m.Comment,
	}
}

// FromDomain populates the persistence model from a domain Review entity.
func (m *ReviewModel) FromDomain(r *catalog.Review) {
	m.FromDomainBaseEntity(r.BaseEntity)
	m.BookingID = r.BookingID
	m.TourID = r.TourID
	m.CustomerID = r.CustomerID
	m.VendorID = r.VendorID
	m.Rating = r.Rating
	m.Comment = r.Comment
}

// ReviewModelFromDomain creates a new persistence model from a domain Review.
func ReviewModelFromDomain(r *catalog.Review) *ReviewModel {
	m := &ReviewModel{}
	m.FromDomain(r)
	return m
}
