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
	"github.com/tourbook/backend/internal/domain/catalog"
	"github.com/tourbook/backend/internal/domain/shared"
	"github.com/tourbook/backend/internal/domain/shared/valueobject"
)

func liveTour(t *testing.T, price float64, maxGuests int) *catalog.Tour {
	t.Helper()
	tour, err := catalog.NewTour(uuid.New(), "Coastal Cliffs Trek", valueobject.NewMoneyUSDFromFloat(price), maxGuests, 1)
	require.NoError(t, err)
	require.NoError(t, tour.Approve())
	require.NoError(t, tour.Activate())
	return tour
}

func guestInputs(n int) []GuestDetailInput {
	inputs := make([]GuestDetailInput, n)
	for i := range inputs {
		inputs[i] = GuestDetailInput{Name: "Guest", Age: 30}
	}
	return inputs
}

func domainGuests(n int) []booking.GuestDetail {
	return ToGuestDetails(guestInputs(n))
}

func paidBooking(t *testing.T, price float64, guests int) *booking.Booking {
	t.Helper()
	tour := liveTour(t, price, guests)
	b, err := booking.NewBooking(uuid.New(), tour, guests, domainGuests(guests), time.Now().Add(24*time.Hour))
	require.NoError(t, err)
	require.NoError(t, b.MarkPaid())
	b.ClearDomainEvents()
	return b
}

func newService(t *testing.T) (*BookingService, *MockBookingRepository, *MockCommissionRepository, *MockTourRepository) {
	t.Helper()
	bookingRepo := new(MockBookingRepository)
	commissionRepo := new(MockCommissionRepository)
	tourRepo := new(MockTourRepository)
	service := NewBookingService(bookingRepo, commissionRepo, tourRepo, zap.NewNop())
	return service, bookingRepo, commissionRepo, tourRepo
}

func TestBookingService_Create(t *testing.T) {
	service, bookingRepo, _, tourRepo := newService(t)

	tour := liveTour(t, 149.50, 8)
	tourRepo.On("FindByID", mock.Anything, tour.ID).Return(tour, nil)
	bookingRepo.On("Save", mock.Anything, mock.AnythingOfType("*booking.Booking")).Return(nil)

	resp, err := service.Create(context.Background(), uuid.New(), CreateBookingRequest{
		TourID:        tour.ID,
		Guests:        2,
		GuestDetails:  guestInputs(2),
		TourStartDate: time.Now().Add(48 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, "PENDING", resp.Status)
	assert.Equal(t, "PENDING", resp.PaymentStatus)
	assert.Equal(t, "299", resp.TotalAmount.String())
	bookingRepo.AssertExpectations(t)
}

func TestBookingService_Create_TourNotFound(t *testing.T) {
	service, bookingRepo, _, tourRepo := newService(t)

	tourID := uuid.New()
	tourRepo.On("FindByID", mock.Anything, tourID).Return(nil, shared.ErrNotFound)

	_, err := service.Create(context.Background(), uuid.New(), CreateBookingRequest{
		TourID:        tourID,
		Guests:        1,
		GuestDetails:  guestInputs(1),
		TourStartDate: time.Now().Add(time.Hour),
	})
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, shared.CodeTourUnavailable, domainErr.Code)
	bookingRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestBookingService_Confirm_ComputesCommission(t *testing.T) {
	service, bookingRepo, commissionRepo, _ := newService(t)

	b := paidBooking(t, 299, 1)
	bookingRepo.On("FindByID", mock.Anything, b.ID).Return(b, nil)
	commissionRepo.On("FindByBookingID", mock.Anything, b.ID).Return(nil, shared.ErrNotFound)

	var saved *booking.Commission
	bookingRepo.On("SaveWithCommission", mock.Anything, b, mock.AnythingOfType("*booking.Commission")).
		Run(func(args mock.Arguments) {
			saved = args.Get(2).(*booking.Commission)
		}).
		Return(nil)

	resp, err := service.Confirm(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, "CONFIRMED", resp.Status)
	require.NotNil(t, resp.CommissionAmount)
	assert.Equal(t, "14.95", resp.CommissionAmount.String())
	require.NotNil(t, saved)
	assert.Equal(t, "14.95", saved.Amount.String())

	bookingRepo.AssertNotCalled(t, "SaveWithLock", mock.Anything, mock.Anything)
}

func TestBookingService_Confirm_ExistingCommissionNotRecomputed(t *testing.T) {
	service, bookingRepo, commissionRepo, _ := newService(t)

	b := paidBooking(t, 299, 1)

	// a prior confirm attempt persisted the commission but not the booking
	confirmed := paidBooking(t, 299, 1)
	require.NoError(t, confirmed.Confirm())
	existing, err := booking.NewCommission(confirmed, booking.CurrentCommissionPolicy())
	require.NoError(t, err)

	bookingRepo.On("FindByID", mock.Anything, b.ID).Return(b, nil)
	commissionRepo.On("FindByBookingID", mock.Anything, b.ID).Return(existing, nil)
	bookingRepo.On("SaveWithLock", mock.Anything, b).Return(nil)

	resp, err := service.Confirm(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, "CONFIRMED", resp.Status)
	require.NotNil(t, resp.CommissionAmount)
	assert.Equal(t, "14.95", resp.CommissionAmount.String())

	bookingRepo.AssertNotCalled(t, "SaveWithCommission", mock.Anything, mock.Anything, mock.Anything)
}

func TestBookingService_Confirm_Unpaid(t *testing.T) {
	service, bookingRepo, _, _ := newService(t)

	tour := liveTour(t, 100, 4)
	b, err := booking.NewBooking(uuid.New(), tour, 1, domainGuests(1), time.Now().Add(time.Hour))
	require.NoError(t, err)

	bookingRepo.On("FindByID", mock.Anything, b.ID).Return(b, nil)

	_, err = service.Confirm(context.Background(), b.ID)
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, shared.CodePaymentNotSettled, domainErr.Code)
}

func TestBookingService_Cancel(t *testing.T) {
	service, bookingRepo, _, _ := newService(t)

	b := paidBooking(t, 100, 2)
	require.NoError(t, b.Confirm())
	b.ClearDomainEvents()

	bookingRepo.On("FindByID", mock.Anything, b.ID).Return(b, nil)
	bookingRepo.On("SaveWithLock", mock.Anything, b).Return(nil)

	resp, err := service.Cancel(context.Background(), b.ID, CancelBookingRequest{Reason: "storm warning"})
	require.NoError(t, err)
	assert.Equal(t, "CANCELLED", resp.Status)
}

func TestBookingService_PaymentCallbacks(t *testing.T) {
	service, bookingRepo, _, _ := newService(t)

	tour := liveTour(t, 100, 4)
	b, err := booking.NewBooking(uuid.New(), tour, 1, domainGuests(1), time.Now().Add(time.Hour))
	require.NoError(t, err)

	bookingRepo.On("FindByID", mock.Anything, b.ID).Return(b, nil)
	bookingRepo.On("SaveWithLock", mock.Anything, b).Return(nil)

	resp, err := service.OnPaymentSettled(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, "PAID", resp.PaymentStatus)

	// refund requires cancellation first
	_, err = service.OnRefundIssued(context.Background(), b.ID)
	require.Error(t, err)

	require.NoError(t, b.Cancel("customer request"))
	resp, err = service.OnRefundIssued(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, "REFUNDED", resp.PaymentStatus)
}
