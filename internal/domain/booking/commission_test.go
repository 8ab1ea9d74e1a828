package booking

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourbook/backend/internal/domain/catalog"
	"github.com/tourbook/backend/internal/domain/shared/valueobject"
)

func confirmedBookingWithTotal(t *testing.T, price float64, guests int) *Booking {
	t.Helper()
	tour, err := catalog.NewTour(uuid.New(), "Glacier Hike", valueobject.NewMoneyUSDFromFloat(price), guests, 2)
	require.NoError(t, err)
	require.NoError(t, tour.Approve())
	require.NoError(t, tour.Activate())

	b, err := NewBooking(uuid.New(), tour, guests, guestList(guests), time.Now().Add(24*time.Hour))
	require.NoError(t, err)
	require.NoError(t, b.MarkPaid())
	require.NoError(t, b.Confirm())
	return b
}

func TestNewCommission(t *testing.T) {
	b := confirmedBookingWithTotal(t, 299, 1)

	c, err := NewCommission(b, CurrentCommissionPolicy())
	require.NoError(t, err)

	assert.Equal(t, b.ID, c.BookingID)
	assert.Equal(t, b.VendorID, c.VendorID)
	assert.Equal(t, 1, c.PolicyVersion)
	assert.Equal(t, "14.95", c.Amount.String())
	assert.Equal(t, CommissionStatusPending, c.Status)
}

func TestNewCommission_RoundsToCents(t *testing.T) {
	tests := []struct {
		name   string
		price  float64
		guests int
		want   string
	}{
		{"exact cents", 100, 2, "10"},
		{"half cent rounds up", 149.50, 1, "7.48"},
		{"odd total", 33.33, 3, "5"},
		{"sub cent", 0.10, 1, "0.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := confirmedBookingWithTotal(t, tt.price, tt.guests)
			c, err := NewCommission(b, CurrentCommissionPolicy())
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Amount.String())
		})
	}
}

func TestNewCommission_RequiresConfirmedBooking(t *testing.T) {
	b := newPendingBooking(t)
	_, err := NewCommission(b, CurrentCommissionPolicy())
	assert.Error(t, err)

	_, err = NewCommission(nil, CurrentCommissionPolicy())
	assert.Error(t, err)
}

func TestNewCommission_PolicySnapshot(t *testing.T) {
	b := confirmedBookingWithTotal(t, 200, 1)

	policy := CommissionPolicy{Version: 2, Rate: decimal.NewFromFloat(0.08)}
	c, err := NewCommission(b, policy)
	require.NoError(t, err)

	assert.Equal(t, 2, c.PolicyVersion)
	assert.True(t, c.Rate.Equal(decimal.NewFromFloat(0.08)))
	assert.Equal(t, "16", c.Amount.String())
}

func TestCommission_SettleAndReverse(t *testing.T) {
	b := confirmedBookingWithTotal(t, 100, 1)
	c, err := NewCommission(b, CurrentCommissionPolicy())
	require.NoError(t, err)

	require.NoError(t, c.Settle())
	assert.Equal(t, CommissionStatusSettled, c.Status)
	require.NotNil(t, c.SettledAt)
	assert.Error(t, c.Settle())

	require.NoError(t, c.Reverse())
	assert.Equal(t, CommissionStatusReversed, c.Status)
	assert.Error(t, c.Reverse())
}
