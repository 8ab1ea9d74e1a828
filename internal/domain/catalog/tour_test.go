package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourbook/backend/internal/domain/shared"
	"github.com/tourbook/backend/internal/domain/shared/valueobject"
)

func newTestTour(t *testing.T) *Tour {
	t.Helper()
	tour, err := NewTour(uuid.New(), "Annapurna Base Camp Trek", valueobject.NewMoneyUSDFromFloat(299), 12, 7)
	require.NoError(t, err)
	return tour
}

func TestNewTour(t *testing.T) {
	vendorID := uuid.New()
	tour, err := NewTour(vendorID, "Annapurna Base Camp Trek", valueobject.NewMoneyUSDFromFloat(299), 12, 7)
	require.NoError(t, err)

	assert.Equal(t, vendorID, tour.VendorID)
	assert.Equal(t, 12, tour.MaxGuests)
	assert.Equal(t, 7, tour.DurationDays)
	assert.False(t, tour.IsActive)
	assert.False(t, tour.IsApproved)
	assert.False(t, tour.IsBookable())
	assert.NotEqual(t, uuid.Nil, tour.ID)
}

func TestNewTour_Validation(t *testing.T) {
	vendorID := uuid.New()
	price := valueobject.NewMoneyUSDFromFloat(100)

	tests := []struct {
		name     string
		vendorID uuid.UUID
		tourName string
		price    valueobject.Money
		guests   int
		days     int
	}{
		{"empty vendor", uuid.Nil, "Trek", price, 10, 3},
		{"empty name", vendorID, "", price, 10, 3},
		{"zero price", vendorID, "Trek", valueobject.ZeroUSD(), 10, 3},
		{"negative price", vendorID, "Trek", valueobject.NewMoneyUSDFromFloat(-5), 10, 3},
		{"zero guests", vendorID, "Trek", price, 0, 3},
		{"negative guests", vendorID, "Trek", price, -1, 3},
		{"zero duration", vendorID, "Trek", price, 10, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTour(tt.vendorID, tt.tourName, tt.price, tt.guests, tt.days)
			assert.Error(t, err)
		})
	}
}

func TestTour_ApproveAndActivate(t *testing.T) {
	tour := newTestTour(t)

	// cannot go live before moderation approval
	err := tour.Activate()
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, shared.CodeTourUnavailable, domainErr.Code)

	require.NoError(t, tour.Approve())
	assert.True(t, tour.IsApproved)
	require.NotNil(t, tour.ApprovedAt)
	assert.Error(t, tour.Approve())

	require.NoError(t, tour.Activate())
	assert.True(t, tour.IsBookable())
	assert.Error(t, tour.Activate())

	events := tour.GetDomainEvents()
	require.Len(t, events, 2)
	assert.Equal(t, EventTypeTourApproved, events[0].EventType())
	assert.Equal(t, EventTypeTourActivated, events[1].EventType())
}

func TestTour_Deactivate(t *testing.T) {
	tour := newTestTour(t)
	require.NoError(t, tour.Approve())
	require.NoError(t, tour.Activate())

	require.NoError(t, tour.Deactivate())
	assert.False(t, tour.IsActive)
	assert.False(t, tour.IsBookable())
	assert.True(t, tour.IsApproved)

	assert.Error(t, tour.Deactivate())
}

func TestTour_DiscountPrice(t *testing.T) {
	tour := newTestTour(t)
	assert.Nil(t, tour.DiscountPrice)

	require.NoError(t, tour.SetDiscountPrice(valueobject.NewMoneyUSDFromFloat(249)))
	require.NotNil(t, tour.DiscountPrice)
	assert.Equal(t, "249", tour.DiscountPrice.String())

	// discount price above the base price is allowed
	require.NoError(t, tour.SetDiscountPrice(valueobject.NewMoneyUSDFromFloat(350)))

	assert.Error(t, tour.SetDiscountPrice(valueobject.NewMoneyUSDFromFloat(-1)))

	tour.ClearDiscountPrice()
	assert.Nil(t, tour.DiscountPrice)
}

func TestTour_TotalFor(t *testing.T) {
	tour := newTestTour(t)
	total := tour.TotalFor(4)
	assert.True(t, total.Equals(valueobject.NewMoneyUSDFromFloat(1196)))
}
