package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	appvendor "github.com/tourbook/backend/internal/application/vendor"
	"github.com/tourbook/backend/internal/domain/booking"
	"github.com/tourbook/backend/internal/domain/catalog"
	"github.com/tourbook/backend/internal/domain/shared"
)

// MockTourRepository is a mock implementation of TourRepository
type MockTourRepository struct {
	mock.Mock
}

func (m *MockTourRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Tour, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Tour), args.Error(1)
}

func (m *MockTourRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Tour, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]catalog.Tour), args.Error(1)
}

func (m *MockTourRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]catalog.Tour, error) {
	args := m.Called(ctx, vendorID, filter)
	return args.Get(0).([]catalog.Tour), args.Error(1)
}

func (m *MockTourRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTourRepository) Save(ctx context.Context, t *catalog.Tour) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTourRepository) SaveWithLock(ctx context.Context, t *catalog.Tour) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTourRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockReviewRepository is a mock implementation of ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Review), args.Error(1)
}

func (m *MockReviewRepository) FindByBooking(ctx context.Context, bookingID uuid.UUID) (*catalog.Review, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Review), args.Error(1)
}

func (m *MockReviewRepository) FindByTour(ctx context.Context, tourID uuid.UUID, filter shared.Filter) ([]catalog.Review, error) {
	args := m.Called(ctx, tourID, filter)
	return args.Get(0).([]catalog.Review), args.Error(1)
}

func (m *MockReviewRepository) Save(ctx context.Context, r *catalog.Review) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

// MockQuotaManager is a mock implementation of QuotaManager
type MockQuotaManager struct {
	mock.Mock
}

func (m *MockQuotaManager) ReserveTourSlot(ctx context.Context, vendorID uuid.UUID) error {
	args := m.Called(ctx, vendorID)
	return args.Error(0)
}

func (m *MockQuotaManager) ReleaseTourSlot(ctx context.Context, vendorID uuid.UUID) error {
	args := m.Called(ctx, vendorID)
	return args.Error(0)
}

func (m *MockQuotaManager) CheckCapacity(ctx context.Context, vendorID uuid.UUID) (*appvendor.CapacityResponse, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*appvendor.CapacityResponse), args.Error(1)
}

// MockBookingRepository is a mock implementation of BookingRepository
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) ([]booking.Booking, error) {
	args := m.Called(ctx, customerID, filter)
	return args.Get(0).([]booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]booking.Booking, error) {
	args := m.Called(ctx, vendorID, filter)
	return args.Get(0).([]booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) FindByStatus(ctx context.Context, status booking.BookingStatus, filter shared.Filter) ([]booking.Booking, error) {
	args := m.Called(ctx, status, filter)
	return args.Get(0).([]booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBookingRepository) Save(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) SaveWithLock(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) SaveWithCommission(ctx context.Context, b *booking.Booking, c *booking.Commission) error {
	args := m.Called(ctx, b, c)
	return args.Error(0)
}

// MockRatingRecorder is a mock implementation of RatingRecorder
type MockRatingRecorder struct {
	mock.Mock
}

func (m *MockRatingRecorder) RecordReview(ctx context.Context, vendorID uuid.UUID, rating int) error {
	args := m.Called(ctx, vendorID, rating)
	return args.Error(0)
}
