package telemetry

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"
)

// CatalogStatsProvider supplies point-in-time catalog figures for gauge collection.
type CatalogStatsProvider interface {
	CountActiveTours(ctx context.Context) (int64, error)
}

// BusinessMetrics records marketplace-level metrics: bookings, commission
// revenue, and subscription quota pressure.
type BusinessMetrics struct {
	logger *zap.Logger

	bookingsCreated    *Counter
	bookingsConfirmed  *Counter
	bookingsCancelled  *Counter
	bookingAmount      metric.Float64Counter
	commissionRecorded *Counter
	commissionAmount   metric.Float64Counter
	quotaExceeded      *Counter
	activeTours        *Gauge

	statsProvider CatalogStatsProvider
	stopCh        chan struct{}
}

// NewBusinessMetrics creates business metric instruments on the given meter.
// statsProvider may be nil, in which case gauge collection is disabled.
func NewBusinessMetrics(meter metric.Meter, statsProvider CatalogStatsProvider, logger *zap.Logger) (*BusinessMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}

	bm := &BusinessMetrics{
		logger:        logger,
		statsProvider: statsProvider,
		stopCh:        make(chan struct{}),
	}

	var err error
	if bm.bookingsCreated, err = NewCounter(meter,
		"tourbook_bookings_created_total",
		"Total number of bookings created", "1"); err != nil {
		return nil, err
	}
	if bm.bookingsConfirmed, err = NewCounter(meter,
		"tourbook_bookings_confirmed_total",
		"Total number of bookings confirmed", "1"); err != nil {
		return nil, err
	}
	if bm.bookingsCancelled, err = NewCounter(meter,
		"tourbook_bookings_cancelled_total",
		"Total number of bookings cancelled", "1"); err != nil {
		return nil, err
	}
	if bm.bookingAmount, err = meter.Float64Counter(
		"tourbook_booking_amount_total",
		metric.WithDescription("Total monetary value of confirmed bookings"),
		metric.WithUnit("{currency}"),
	); err != nil {
		return nil, fmt.Errorf("failed to create booking amount counter: %w", err)
	}
	if bm.commissionRecorded, err = NewCounter(meter,
		"tourbook_commissions_recorded_total",
		"Total number of commissions recorded", "1"); err != nil {
		return nil, err
	}
	if bm.commissionAmount, err = meter.Float64Counter(
		"tourbook_commission_amount_total",
		metric.WithDescription("Total commission revenue recorded"),
		metric.WithUnit("{currency}"),
	); err != nil {
		return nil, fmt.Errorf("failed to create commission amount counter: %w", err)
	}
	if bm.quotaExceeded, err = NewCounter(meter,
		"tourbook_quota_exceeded_total",
		"Number of tour publications rejected due to exhausted subscription quota", "1"); err != nil {
		return nil, err
	}
	if bm.activeTours, err = NewGauge(meter,
		"tourbook_active_tours",
		"Number of tours currently active and bookable", "1"); err != nil {
		return nil, err
	}

	return bm, nil
}

// RecordBookingCreated increments the booking creation counter.
func (bm *BusinessMetrics) RecordBookingCreated(ctx context.Context, vendorID, tourID string) {
	bm.bookingsCreated.Inc(ctx,
		AttrVendorID.String(vendorID),
		AttrTourID.String(tourID),
	)
}

// RecordBookingConfirmed increments the confirmation counter and adds the
// booking total to the revenue counter.
func (bm *BusinessMetrics) RecordBookingConfirmed(ctx context.Context, vendorID string, totalAmount float64) {
	bm.bookingsConfirmed.Inc(ctx, AttrVendorID.String(vendorID))
	bm.bookingAmount.Add(ctx, totalAmount,
		metric.WithAttributes(AttrVendorID.String(vendorID)),
	)
}

// RecordBookingCancelled increments the cancellation counter with the status
// the booking was in before cancellation.
func (bm *BusinessMetrics) RecordBookingCancelled(ctx context.Context, vendorID, priorStatus string) {
	bm.bookingsCancelled.Inc(ctx,
		AttrVendorID.String(vendorID),
		AttrBookingStatus.String(priorStatus),
	)
}

// RecordCommission increments the commission counter and revenue total.
func (bm *BusinessMetrics) RecordCommission(ctx context.Context, vendorID string, amount float64) {
	bm.commissionRecorded.Inc(ctx, AttrVendorID.String(vendorID))
	bm.commissionAmount.Add(ctx, amount,
		metric.WithAttributes(AttrVendorID.String(vendorID)),
	)
}

// RecordQuotaExceeded increments the quota rejection counter.
func (bm *BusinessMetrics) RecordQuotaExceeded(ctx context.Context, vendorID, planType string) {
	bm.quotaExceeded.Inc(ctx,
		AttrVendorID.String(vendorID),
		AttrPlanType.String(planType),
	)
}

// StartPeriodicCollection begins periodic gauge collection at the given
// interval. It blocks until Stop is called, so run it in a goroutine.
func (bm *BusinessMetrics) StartPeriodicCollection(ctx context.Context, interval time.Duration) {
	if bm.statsProvider == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	bm.collect(ctx)
	for {
		select {
		case <-ticker.C:
			bm.collect(ctx)
		case <-bm.stopCh:
			return
		case <-ctx.Done():
			return
		}
	}
}

// Stop terminates periodic gauge collection.
func (bm *BusinessMetrics) Stop() {
	close(bm.stopCh)
}

func (bm *BusinessMetrics) collect(ctx context.Context) {
	count, err := bm.statsProvider.CountActiveTours(ctx)
	if err != nil {
		bm.logger.Warn("Failed to collect active tour count", zap.Error(err))
		return
	}
	bm.activeTours.Record(ctx, count)
}
