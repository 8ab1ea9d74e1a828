package notification

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
	"github.com/tourbook/backend/internal/domain/shared/valueobject"
	"github.com/tourbook/backend/internal/domain/vendor"
)

// MockNotifier is a mock implementation of Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Send(ctx context.Context, n Notification) error {
	args := m.Called(ctx, n)
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

func confirmedEvent(t *testing.T) *booking.BookingConfirmedEvent {
	t.Helper()
	tour, err := catalog.NewTour(uuid.New(), "Island Hopper", valueobject.NewMoneyUSDFromFloat(220), 6, 1)
	require.NoError(t, err)
	require.NoError(t, tour.Approve())
	require.NoError(t, tour.Activate())

	b, err := booking.NewBooking(uuid.New(), tour, 1, []booking.GuestDetail{{Name: "Sam", Age: 40}}, time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.NoError(t, b.MarkPaid())
	require.NoError(t, b.Confirm())
	return booking.NewBookingConfirmedEvent(b)
}

func TestHandler_BookingConfirmed_NotifiesBothParties(t *testing.T) {
	notifier := new(MockNotifier)
	store := new(MockIdempotencyStore)
	handler := NewHandler(notifier, store, zap.NewNop())

	event := confirmedEvent(t)
	store.On("MarkProcessed", mock.Anything, event.EventID().String(), mock.Anything).Return(true, nil)
	notifier.On("Send", mock.Anything, mock.AnythingOfType("notification.Notification")).Return(nil).Twice()

	require.NoError(t, handler.Handle(context.Background(), event))
	notifier.AssertNumberOfCalls(t, "Send", 2)
}

func TestHandler_DuplicateDeliveryDropped(t *testing.T) {
	notifier := new(MockNotifier)
	store := new(MockIdempotencyStore)
	handler := NewHandler(notifier, store, zap.NewNop())

	event := confirmedEvent(t)
	store.On("MarkProcessed", mock.Anything, event.EventID().String(), mock.Anything).Return(false, nil)

	require.NoError(t, handler.Handle(context.Background(), event))
	notifier.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestHandler_QuotaExceeded_NotifiesVendor(t *testing.T) {
	notifier := new(MockNotifier)
	store := new(MockIdempotencyStore)
	handler := NewHandler(notifier, store, zap.NewNop())

	sub, err := vendor.NewSubscription(uuid.New(), vendor.PlanBasic, time.Now().Add(-time.Hour), time.Now().AddDate(0, 1, 0))
	require.NoError(t, err)
	event := vendor.NewTourQuotaExceededEvent(sub)

	store.On("MarkProcessed", mock.Anything, event.EventID().String(), mock.Anything).Return(true, nil)

	var sent Notification
	notifier.On("Send", mock.Anything, mock.AnythingOfType("notification.Notification")).
		Run(func(args mock.Arguments) {
			sent = args.Get(1).(Notification)
		}).
		Return(nil)

	require.NoError(t, handler.Handle(context.Background(), event))
	assert.Equal(t, sub.VendorID.String(), sent.Recipient)
	assert.Contains(t, sent.Body, "BASIC")
}

func TestHandler_EventTypes(t *testing.T) {
	handler := NewHandler(new(MockNotifier), nil, zap.NewNop())
	assert.ElementsMatch(t, []string{
		booking.EventTypeBookingConfirmed,
		booking.EventTypeBookingCancelled,
		vendor.EventTypeTourQuotaExceeded,
	}, handler.EventTypes())
}
