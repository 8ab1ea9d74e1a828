package booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tourbook/backend/internal/domain/booking"
	"github.com/tourbook/backend/internal/domain/shared"
)

func TestCommissionService_ComputeForBooking(t *testing.T) {
	commissionRepo := new(MockCommissionRepository)
	bookingRepo := new(MockBookingRepository)
	service := NewCommissionService(commissionRepo, bookingRepo, zap.NewNop())

	b := paidBooking(t, 299, 1)
	require.NoError(t, b.Confirm())

	commissionRepo.On("FindByBookingID", mock.Anything, b.ID).Return(nil, shared.ErrNotFound)
	bookingRepo.On("FindByID", mock.Anything, b.ID).Return(b, nil)
	bookingRepo.On("SaveWithCommission", mock.Anything, b, mock.AnythingOfType("*booking.Commission")).Return(nil)

	resp, err := service.ComputeForBooking(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, "14.95", resp.Amount.String())
	assert.Equal(t, b.ID, resp.BookingID)
}

func TestCommissionService_ComputeForBooking_Idempotent(t *testing.T) {
	commissionRepo := new(MockCommissionRepository)
	bookingRepo := new(MockBookingRepository)
	service := NewCommissionService(commissionRepo, bookingRepo, zap.NewNop())

	b := paidBooking(t, 200, 1)
	require.NoError(t, b.Confirm())
	existing, err := booking.NewCommission(b, booking.CurrentCommissionPolicy())
	require.NoError(t, err)

	commissionRepo.On("FindByBookingID", mock.Anything, b.ID).Return(existing, nil)

	resp, err := service.ComputeForBooking(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, resp.ID)
	assert.Equal(t, "10", resp.Amount.String())

	bookingRepo.AssertNotCalled(t, "SaveWithCommission", mock.Anything, mock.Anything, mock.Anything)
}

func TestCommissionService_ComputeForBooking_NotConfirmed(t *testing.T) {
	commissionRepo := new(MockCommissionRepository)
	bookingRepo := new(MockBookingRepository)
	service := NewCommissionService(commissionRepo, bookingRepo, zap.NewNop())

	b := paidBooking(t, 100, 1)

	commissionRepo.On("FindByBookingID", mock.Anything, b.ID).Return(nil, shared.ErrNotFound)
	bookingRepo.On("FindByID", mock.Anything, b.ID).Return(b, nil)

	_, err := service.ComputeForBooking(context.Background(), b.ID)
	assert.Error(t, err)
}

func TestCommissionService_SettleForBooking(t *testing.T) {
	commissionRepo := new(MockCommissionRepository)
	bookingRepo := new(MockBookingRepository)
	service := NewCommissionService(commissionRepo, bookingRepo, zap.NewNop())

	b := paidBooking(t, 100, 1)
	require.NoError(t, b.Confirm())
	commission, err := booking.NewCommission(b, booking.CurrentCommissionPolicy())
	require.NoError(t, err)

	bookingRepo.On("FindByID", mock.Anything, b.ID).Return(b, nil)
	commissionRepo.On("FindByBookingID", mock.Anything, b.ID).Return(commission, nil)
	commissionRepo.On("SaveWithLock", mock.Anything, commission).Return(nil)

	resp, err := service.SettleForBooking(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, string(booking.CommissionStatusSettled), resp.Status)
	assert.NotNil(t, commission.SettledAt)

	// second settlement hits the pending-only transition guard
	_, err = service.SettleForBooking(context.Background(), b.ID)
	assert.Error(t, err)
	commissionRepo.AssertNumberOfCalls(t, "SaveWithLock", 1)
}

func TestCommissionService_SettleForBooking_UnpaidBooking(t *testing.T) {
	commissionRepo := new(MockCommissionRepository)
	bookingRepo := new(MockBookingRepository)
	service := NewCommissionService(commissionRepo, bookingRepo, zap.NewNop())

	tour := liveTour(t, 100, 1)
	b, err := booking.NewBooking(uuid.New(), tour, 1, domainGuests(1), time.Now().Add(24*time.Hour))
	require.NoError(t, err)

	bookingRepo.On("FindByID", mock.Anything, b.ID).Return(b, nil)

	_, err = service.SettleForBooking(context.Background(), b.ID)
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, shared.CodePaymentNotSettled, domainErr.Code)
	commissionRepo.AssertNotCalled(t, "FindByBookingID", mock.Anything, mock.Anything)
}

func TestCommissionService_ReverseForBooking(t *testing.T) {
	commissionRepo := new(MockCommissionRepository)
	bookingRepo := new(MockBookingRepository)
	service := NewCommissionService(commissionRepo, bookingRepo, zap.NewNop())

	b := paidBooking(t, 100, 1)
	require.NoError(t, b.Confirm())
	commission, err := booking.NewCommission(b, booking.CurrentCommissionPolicy())
	require.NoError(t, err)

	commissionRepo.On("FindByBookingID", mock.Anything, b.ID).Return(commission, nil)
	commissionRepo.On("SaveWithLock", mock.Anything, commission).Return(nil)

	require.NoError(t, service.ReverseForBooking(context.Background(), b.ID))
	assert.Equal(t, booking.CommissionStatusReversed, commission.Status)

	// second reversal is a no-op
	require.NoError(t, service.ReverseForBooking(context.Background(), b.ID))
	commissionRepo.AssertNumberOfCalls(t, "SaveWithLock", 1)
}

func TestCommissionService_ReverseForBooking_NoCommission(t *testing.T) {
	commissionRepo := new(MockCommissionRepository)
	bookingRepo := new(MockBookingRepository)
	service := NewCommissionService(commissionRepo, bookingRepo, zap.NewNop())

	b := paidBooking(t, 100, 1)
	commissionRepo.On("FindByBookingID", mock.Anything, b.ID).Return(nil, shared.ErrNotFound)

	assert.NoError(t, service.ReverseForBooking(context.Background(), b.ID))
}
