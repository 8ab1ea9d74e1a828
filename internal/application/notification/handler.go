package notification

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/tourbook/backend/internal/domain/booking"
	"github.com/tourbook/backend/internal/domain/shared"
	"github.com/tourbook/backend/internal/domain/vendor"
)

// Notification is an outbound message to a customer or vendor
type Notification struct {
	Recipient string `json:"recipient"` // customer or vendor ID
	Channel   string `json:"channel"`   // email, push
	Subject   string `json:"subject"`
	Body      string `json:"body"`
}

// Notifier delivers notifications. Implementations back different channels;
// the log notifier is the default in development.
type Notifier interface {
	Send(ctx context.Context, n Notification) error
}

// Handler turns domain events into customer and vendor notifications.
// Delivery is at-most-once per event: redelivered events are dropped by the
// idempotency store.
type Handler struct {
	notifier    Notifier
	idempotency shared.IdempotencyStore
	config      shared.IdempotencyConfig
	logger      *zap.Logger
}

// NewHandler creates a new notification handler
func NewHandler(notifier Notifier, idempotency shared.IdempotencyStore, logger *zap.Logger) *Handler {
	return &Handler{
		notifier:    notifier,
		idempotency: idempotency,
		config:      shared.DefaultIdempotencyConfig(),
		logger:      logger,
	}
}

// EventTypes returns the event types this handler is interested in
func (h *Handler) EventTypes() []string {
	return []string{
		booking.EventTypeBookingConfirmed,
		booking.EventTypeBookingCancelled,
		vendor.EventTypeTourQuotaExceeded,
	}
}

// Handle processes a domain event into notifications
func (h *Handler) Handle(ctx context.Context, event shared.DomainEvent) error {
	if h.idempotency != nil && h.config.Enabled {
		fresh, err := h.idempotency.MarkProcessed(ctx, event.EventID().String(), h.config.TTL)
		if err != nil {
			h.logger.Warn("Idempotency check failed, processing anyway", zap.Error(err))
		} else if !fresh {
			return nil
		}
	}

	switch e := event.(type) {
	case *booking.BookingConfirmedEvent:
		return h.onBookingConfirmed(ctx, e)
	case *booking.BookingCancelledEvent:
		return h.onBookingCancelled(ctx, e)
	case *vendor.TourQuotaExceededEvent:
		return h.onQuotaExceeded(ctx, e)
	default:
		h.logger.Debug("Ignoring event", zap.String("event_type", event.EventType()))
		return nil
	}
}

func (h *Handler) onBookingConfirmed(ctx context.Context, e *booking.BookingConfirmedEvent) error {
	return h.send(ctx,
		Notification{
			Recipient: e.CustomerID.String(),
			Channel:   "email",
			Subject:   "Booking confirmed",
			Body:      fmt.Sprintf("Your booking %s is confirmed. Total: %s USD.", e.BookingID, e.TotalAmount.StringFixed(2)),
		},
		Notification{
			Recipient: e.VendorID.String(),
			Channel:   "push",
			Subject:   "New confirmed booking",
			Body:      fmt.Sprintf("Booking %s for tour %s is confirmed.", e.BookingID, e.TourID),
		},
	)
}

func (h *Handler) onBookingCancelled(ctx context.Context, e *booking.BookingCancelledEvent) error {
	body := fmt.Sprintf("Booking %s was cancelled.", e.BookingID)
	if e.Reason != "" {
		body = fmt.Sprintf("Booking %s was cancelled: %s.", e.BookingID, e.Reason)
	}
	return h.send(ctx,
		Notification{
			Recipient: e.CustomerID.String(),
			Channel:   "email",
			Subject:   "Booking cancelled",
			Body:      body,
		},
		Notification{
			Recipient: e.VendorID.String(),
			Channel:   "push",
			Subject:   "Booking cancelled",
			Body:      body,
		},
	)
}

func (h *Handler) onQuotaExceeded(ctx context.Context, e *vendor.TourQuotaExceededEvent) error {
	return h.send(ctx, Notification{
		Recipient: e.VendorID.String(),
		Channel:   "email",
		Subject:   "Tour limit reached",
		Body: fmt.Sprintf("Your %s plan allows %d active tours and all slots are in use. Upgrade to list more tours.",
			e.PlanType, e.TourLimit),
	})
}

func (h *Handler) send(ctx context.Context, notifications ...Notification) error {
	for _, n := range notifications {
		if err := h.notifier.Send(ctx, n); err != nil {
			h.logger.Error("Failed to send notification",
				zap.String("recipient", n.Recipient),
				zap.String("subject", n.Subject),
				zap.Error(err))
			return err
		}
	}
	return nil
}
