package booking

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tourbook/backend/internal/domain/booking"
	"github.com/tourbook/backend/internal/domain/shared"
)

// CancellationHandler reverses the commission when a confirmed booking is
// cancelled. Pending-booking cancellations carry no commission and are
// skipped. The idempotency store keeps redelivered events from double
// processing.
type CancellationHandler struct {
	commissions *CommissionService
	idempotency shared.IdempotencyStore
	config      shared.IdempotencyConfig
	logger      *zap.Logger
}

// NewCancellationHandler creates a new handler for booking cancellations
func NewCancellationHandler(
	commissions *CommissionService,
	idempotency shared.IdempotencyStore,
	logger *zap.Logger,
) *CancellationHandler {
	return &CancellationHandler{
		commissions: commissions,
		idempotency: idempotency,
		config:      shared.DefaultIdempotencyConfig(),
		logger:      logger,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *CancellationHandler) EventTypes() []string {
	return []string{booking.EventTypeBookingCancelled}
}

// Handle processes a BookingCancelledEvent
func (h *CancellationHandler) Handle(ctx context.Context, event shared.DomainEvent) error {
	cancelled, ok := event.(*booking.BookingCancelledEvent)
	if !ok {
		return fmt.Errorf("unexpected event type: expected %s, got %s",
			booking.EventTypeBookingCancelled, event.EventType())
	}

	if !cancelled.WasConfirmed {
		return nil
	}

	if h.idempotency != nil && h.config.Enabled {
		fresh, err := h.idempotency.MarkProcessed(ctx, event.EventID().String(), h.config.TTL)
		if err != nil {
			h.logger.Warn("Idempotency check failed, processing anyway", zap.Error(err))
		} else if !fresh {
			h.logger.Debug("Skipping already processed cancellation",
				zap.String("event_id", event.EventID().String()))
			return nil
		}
	}

	if err := h.commissions.ReverseForBooking(ctx, cancelled.BookingID); err != nil {
		h.logger.Error("Failed to reverse commission",
			zap.String("booking_id", cancelled.BookingID.String()),
			zap.Error(err))
		return err
	}

	return nil
}
