package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/tourbook/backend/internal/domain/vendor"
)

// VendorModel is the persistence model for the Vendor aggregate.
type VendorModel struct {
	AggregateModel
	BusinessName   string          `gorm:"type:varchar(200);not null"`
	IsActive       bool            `gorm:"not null;default:true"`
	SubscriptionID *uuid.UUID      `gorm:"type:uuid;index"`
	Rating         decimal.Decimal `gorm:"type:decimal(3,2);not null;default:0"`
	TotalReviews   int             `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (VendorModel) TableName() string {
	return "vendors"
}

// ToDomain converts the persistence model to a domain Vendor aggregate.
func (m *VendorModel) ToDomain() *vendor.Vendor {
	return &vendor.Vendor{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		BusinessName:      m.BusinessName,
		IsActive:          m.IsActive,
		SubscriptionID:    m.SubscriptionID,
		Rating:            m.Rating,
		TotalReviews:      m.TotalReviews,
	}
}

// FromDomain populates the persistence model from a domain Vendor aggregate.
func (m *VendorModel) FromDomain(v *vendor.Vendor) {
	m.FromDomainAggregateRoot(v.BaseAggregateRoot)
	m.BusinessName = v.BusinessName
	m.IsActive = v.IsActive
	m.SubscriptionID = v.SubscriptionID
	m.Rating = v.Rating
	m.TotalReviews = v.TotalReviews
}

// VendorModelFromDomain creates a new persistence model from a domain Vendor.
func VendorModelFromDomain(v *vendor.Vendor) *VendorModel {
	m := &VendorModel{}
	m.FromDomain(v)
	return m
}

// SubscriptionModel is the persistence model for the Subscription aggregate.
type SubscriptionModel struct {
	AggregateModel
	VendorID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	PlanType     vendor.PlanType `gorm:"type:varchar(20);not null"`
	TourLimit    int             `gorm:"not null"`
	CurrentTours int             `gorm:"not null;default:0"`
	StartDate    time.Time       `gorm:"not null"`
	EndDate      time.Time       `gorm:"not null"`
	IsActive     bool            `gorm:"not null;default:true;index"`
}

// TableName returns the table name for GORM
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}

// ToDomain converts the persistence model to a domain Subscription aggregate.
func (m *SubscriptionModel) ToDomain() *vendor.Subscription {
	return &vendor.Subscription{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		VendorID:          m.VendorID,
		PlanType:          m.PlanType,
		TourLimit:         m.TourLimit,
		CurrentTours:      m.CurrentTours,
		StartDate:         m.StartDate,
		EndDate:           m.EndDate,
		IsActive:          m.IsActive,
	}
}

// FromDomain populates the persistence model from a domain Subscription.
func (m *SubscriptionModel) FromDomain(s *vendor.Subscription) {
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	m.VendorID = s.VendorID
	m.PlanType = s.PlanType
	m.TourLimit = s.TourLimit
	m.CurrentTours = s.CurrentTours
	m.StartDate = s.StartDate
	m.EndDate = s.EndDate
	m.IsActive = s.IsActive
}

// SubscriptionModelFromDomain creates a new persistence model from a domain Subscription.
func SubscriptionModelFromDomain(s *vendor.Subscription) *SubscriptionModel {
	m := &SubscriptionModel{}
	m.FromDomain(s)
	return m
}
