package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/tourbook/backend/internal/domain/shared"
)

// BookingRepository defines persistence operations for bookings
type BookingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) ([]Booking, error)
	FindByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]Booking, error)
	FindByStatus(ctx context.Context, status BookingStatus, filter shared.Filter) ([]Booking, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, b *Booking) error
	SaveWithLock(ctx context.Context, b *Booking) error
	// SaveWithCommission persists the confirmed booking and its commission
	// record in one transaction.
	SaveWithCommission(ctx context.Context, b *Booking, c *Commission) error
}

// CommissionRepository defines persistence operations for commissions
type CommissionRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Commission, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*Commission, error)
	FindByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]Commission, error)
	Save(ctx context.Context, c *Commission) error
	SaveWithLock(ctx context.Context, c *Commission) error
}
