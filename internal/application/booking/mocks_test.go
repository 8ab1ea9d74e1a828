package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/tourbook/backend/internal/domain/booking"
	"github.com/tourbook/backend/internal/domain/catalog"
	"github.com/tourbook/backend/internal/domain/shared"
)

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

// MockCommissionRepository is a mock implementation of CommissionRepository
type MockCommissionRepository struct {
	mock.Mock
}

func (m *MockCommissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Commission, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Commission), args.Error(1)
}

func (m *MockCommissionRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*booking.Commission, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Commission), args.Error(1)
}

func (m *MockCommissionRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]booking.Commission, error) {
	args := m.Called(ctx, vendorID, filter)
	return args.Get(0).([]booking.Commission), args.Error(1)
}

func (m *MockCommissionRepository) Save(ctx context.Context, c *booking.Commission) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCommissionRepository) SaveWithLock(ctx context.Context, c *booking.Commission) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

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

// MockIdempotencyStore is a mock implementation of IdempotencyStore
type MockIdempotencyStore struct {
	mock.Mock
}

func (m *MockIdempotencyStore) MarkProcessed(ctx context.Context, eventID string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, eventID, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *MockIdempotencyStore) IsProcessed(ctx context.Context, eventID string) (bool, error) {
	args := m.Called(ctx, eventID)
	return args.Bool(0), args.Error(1)
}

func (m *MockIdempotencyStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
