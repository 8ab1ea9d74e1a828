package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/tourbook/backend/internal/domain/shared"
)

// TourRepository defines persistence operations for tours
type TourRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Tour, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Tour, error)
	FindByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]Tour, error)
	Count(ctx context.Context, filter shared.Filter) (int64, error)
	Save(ctx context.Context, t *Tour) error
	SaveWithLock(ctx context.Context, t *Tour) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReviewRepository defines persistence operations for reviews
type ReviewRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Review, error)
	FindByBooking(ctx context.Context, bookingID uuid.UUID) (*Review, error)
	FindByTour(ctx context.Context, tourID uuid.UUID, filter shared.Filter) ([]Review, error)
	Save(ctx context.Context, r *Review) error
}
