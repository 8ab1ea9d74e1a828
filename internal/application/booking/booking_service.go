package booking

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tourbook/backend/internal/domain/booking"
	"github.com/tourbook/backend/internal/domain/catalog"
	"github.com/tourbook/backend/internal/domain/shared"
	"github.com/tourbook/backend/internal/infrastructure/telemetry"
)

// BookingService handles the booking lifecycle. Confirmation and commission
// computation commit in one transaction so a confirmed booking can never
// exist without its commission record.
type BookingService struct {
	bookingRepo     booking.BookingRepository
	commissionRepo  booking.CommissionRepository
	tourRepo        catalog.TourRepository
	eventPublisher  shared.EventPublisher
	businessMetrics *telemetry.BusinessMetrics
	logger          *zap.Logger
}

// NewBookingService creates a new BookingService
func NewBookingService(
	bookingRepo booking.BookingRepository,
	commissionRepo booking.CommissionRepository,
	tourRepo catalog.TourRepository,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:    bookingRepo,
		commissionRepo: commissionRepo,
		tourRepo:       tourRepo,
		logger:         logger,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *BookingService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// SetBusinessMetrics sets the business metrics collector
func (s *BookingService) SetBusinessMetrics(bm *telemetry.BusinessMetrics) {
	s.businessMetrics = bm
}

// Create places a new booking for a bookable tour
func (s *BookingService) Create(ctx context.Context, customerID uuid.UUID, req CreateBookingRequest) (*BookingResponse, error) {
	tour, err := s.tourRepo.FindByID(ctx, req.TourID)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError(shared.CodeTourUnavailable, "Tour not found")
		}
		return nil, err
	}

	b, err := booking.NewBooking(customerID, tour, req.Guests, ToGuestDetails(req.GuestDetails), req.TourStartDate)
	if err != nil {
		return nil, err
	}

	if err := s.bookingRepo.Save(ctx, b); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, b)

	if s.businessMetrics != nil {
		s.businessMetrics.RecordBookingCreated(ctx, b.VendorID.String(), b.TourID.String())
	}

	s.logger.Info("Booking created",
		zap.String("booking_id", b.ID.String()),
		zap.String("tour_id", tour.ID.String()),
		zap.Int("guests", b.Guests),
		zap.String("total", b.TotalAmount.String()))

	response := ToBookingResponse(b)
	return &response, nil
}

// GetByID retrieves a booking by ID
func (s *BookingService) GetByID(ctx context.Context, bookingID uuid.UUID) (*BookingResponse, error) {
	b, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	response := ToBookingResponse(b)
	return &response, nil
}

// ListByCustomer retrieves the customer's bookings with pagination
func (s *BookingService) ListByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) ([]BookingResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	bookings, err := s.bookingRepo.FindByCustomer(ctx, customerID, filter)
	if err != nil {
		return nil, err
	}
	return toBookingResponses(bookings), nil
}

// ListByVendor retrieves the vendor's bookings with pagination
func (s *BookingService) ListByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]BookingResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	bookings, err := s.bookingRepo.FindByVendor(ctx, vendorID, filter)
	if err != nil {
		return nil, err
	}
	return toBookingResponses(bookings), nil
}

// Confirm confirms a paid booking and records the platform commission.
// The commission is computed exactly once per booking: a retried confirm
// finds the existing record and skips recomputation.
func (s *BookingService) Confirm(ctx context.Context, bookingID uuid.UUID) (*BookingResponse, error) {
	b, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := b.Confirm(); err != nil {
		return nil, err
	}

	existing, err := s.commissionRepo.FindByBookingID(ctx, b.ID)
	switch {
	case err == shared.ErrNotFound:
		commission, err := booking.NewCommission(b, booking.CurrentCommissionPolicy())
		if err != nil {
			return nil, err
		}
		if err := b.SetCommissionAmount(commission.GetAmountMoney()); err != nil {
			return nil, err
		}
		if err := s.bookingRepo.SaveWithCommission(ctx, b, commission); err != nil {
			return nil, err
		}
		b.AddDomainEvent(booking.NewCommissionCalculatedEvent(commission))

		s.logger.Info("Commission recorded",
			zap.String("booking_id", b.ID.String()),
			zap.String("amount", commission.Amount.String()),
			zap.String("rate", commission.Rate.String()))
	case err == nil:
		if b.CommissionAmount == nil {
			if err := b.SetCommissionAmount(existing.GetAmountMoney()); err != nil {
				return nil, err
			}
		}
		if err := s.bookingRepo.SaveWithLock(ctx, b); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	s.publishEvents(ctx, b)

	if s.businessMetrics != nil {
		s.businessMetrics.RecordBookingConfirmed(ctx, b.VendorID.String(), b.TotalAmount.InexactFloat64())
		if b.CommissionAmount != nil {
			s.businessMetrics.RecordCommission(ctx, b.VendorID.String(), b.CommissionAmount.InexactFloat64())
		}
	}

	response := ToBookingResponse(b)
	return &response, nil
}

// Cancel cancels a pending or confirmed booking
func (s *BookingService) Cancel(ctx context.Context, bookingID uuid.UUID, req CancelBookingRequest) (*BookingResponse, error) {
	b, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	priorStatus := b.Status

	if err := b.Cancel(req.Reason); err != nil {
		return nil, err
	}

	if err := s.bookingRepo.SaveWithLock(ctx, b); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, b)

	if s.businessMetrics != nil {
		s.businessMetrics.RecordBookingCancelled(ctx, b.VendorID.String(), string(priorStatus))
	}

	s.logger.Info("Booking cancelled",
		zap.String("booking_id", b.ID.String()),
		zap.String("reason", req.Reason))

	response := ToBookingResponse(b)
	return &response, nil
}

// Complete marks a confirmed booking as completed after the tour date
func (s *BookingService) Complete(ctx context.Context, bookingID uuid.UUID) (*BookingResponse, error) {
	b, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := b.Complete(time.Now()); err != nil {
		return nil, err
	}

	if err := s.bookingRepo.SaveWithLock(ctx, b); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, b)

	response := ToBookingResponse(b)
	return &response, nil
}

// OnPaymentSettled records payment settlement from the provider callback
func (s *BookingService) OnPaymentSettled(ctx context.Context, bookingID uuid.UUID) (*BookingResponse, error) {
	b, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := b.MarkPaid(); err != nil {
		return nil, err
	}

	if err := s.bookingRepo.SaveWithLock(ctx, b); err != nil {
		return nil, err
	}

	s.logger.Info("Payment settled", zap.String("booking_id", b.ID.String()))

	response := ToBookingResponse(b)
	return &response, nil
}

// OnRefundIssued records a refund from the provider callback
func (s *BookingService) OnRefundIssued(ctx context.Context, bookingID uuid.UUID) (*BookingResponse, error) {
	b, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := b.Refund(); err != nil {
		return nil, err
	}

	if err := s.bookingRepo.SaveWithLock(ctx, b); err != nil {
		return nil, err
	}

	s.logger.Info("Refund recorded", zap.String("booking_id", b.ID.String()))

	response := ToBookingResponse(b)
	return &response, nil
}

func toBookingResponses(bookings []booking.Booking) []BookingResponse {
	responses := make([]BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = ToBookingResponse(&bookings[i])
	}
	return responses
}

func (s *BookingService) publishEvents(ctx context.Context, b *booking.Booking) {
	if s.eventPublisher == nil {
		return
	}
	for _, event := range b.GetDomainEvents() {
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.logger.Warn("Failed to publish booking event",
				zap.String("event_type", event.EventType()),
				zap.Error(err))
		}
	}
	b.ClearDomainEvents()
}
