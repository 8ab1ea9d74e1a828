package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
	"go.uber.org/zap"
)

type stubStatsProvider struct {
	count int64
	calls int
}

func (s *stubStatsProvider) CountActiveTours(_ context.Context) (int64, error) {
	s.calls++
	return s.count, nil
}

func TestNewBusinessMetrics(t *testing.T) {
	t.Run("creates all instruments", func(t *testing.T) {
		meter := noop.NewMeterProvider().Meter("test")

		bm, err := NewBusinessMetrics(meter, nil, zap.NewNop())
		require.NoError(t, err)
		require.NotNil(t, bm)

		ctx := context.Background()
		bm.RecordBookingCreated(ctx, "vendor-1", "tour-1")
		bm.RecordBookingConfirmed(ctx, "vendor-1", 1500.00)
		bm.RecordBookingCancelled(ctx, "vendor-1", "pending")
		bm.RecordCommission(ctx, "vendor-1", 75.00)
		bm.RecordQuotaExceeded(ctx, "vendor-1", "basic")
	})

	t.Run("nil meter returns error", func(t *testing.T) {
		bm, err := NewBusinessMetrics(nil, nil, zap.NewNop())
		assert.ErrorIs(t, err, ErrMeterNil)
		assert.Nil(t, bm)
	})
}

func TestBusinessMetricsPeriodicCollection(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")
	provider := &stubStatsProvider{count: 7}

	bm, err := NewBusinessMetrics(meter, provider, zap.NewNop())
	require.NoError(t, err)

	done := make(chan struct{})
	go func() {
		bm.StartPeriodicCollection(context.Background(), 10*time.Millisecond)
		close(done)
	}()

	time.Sleep(35 * time.Millisecond)
	bm.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("periodic collection did not stop")
	}

	assert.GreaterOrEqual(t, provider.calls, 1)
}

func TestBusinessMetricsCollectionWithoutProvider(t *testing.T) {
	meter := noop.NewMeterProvider().Meter("test")

	bm, err := NewBusinessMetrics(meter, nil, zap.NewNop())
	require.NoError(t, err)

	// Returns immediately when no stats provider is configured.
	bm.StartPeriodicCollection(context.Background(), time.Millisecond)
}
