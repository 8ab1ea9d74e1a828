package booking

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tourbook/backend/internal/domain/booking"
	"github.com/tourbook/backend/internal/domain/shared"
)

// CommissionService exposes commission queries, reversal, and an idempotent
// backfill path for bookings confirmed before the commission record landed.
type CommissionService struct {
	commissionRepo booking.CommissionRepository
	bookingRepo    booking.BookingRepository
	logger         *zap.Logger
}

// NewCommissionService creates a new CommissionService
func NewCommissionService(
	commissionRepo booking.CommissionRepository,
	bookingRepo booking.BookingRepository,
	logger *zap.Logger,
) *CommissionService {
	return &CommissionService{
		commissionRepo: commissionRepo,
		bookingRepo:    bookingRepo,
		logger:         logger,
	}
}

// ComputeForBooking ensures a commission record exists for a confirmed
// booking. Existing records are returned as-is, never recomputed, so the
// call is safe to retry.
func (s *CommissionService) ComputeForBooking(ctx context.Context, bookingID uuid.UUID) (*CommissionResponse, error) {
	existing, err := s.commissionRepo.FindByBookingID(ctx, bookingID)
	if err == nil {
		response := ToCommissionResponse(existing)
		return &response, nil
	}
	if err != shared.ErrNotFound {
		return nil, err
	}

	b, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	commission, err := booking.NewCommission(b, booking.CurrentCommissionPolicy())
	if err != nil {
		return nil, err
	}

	if b.CommissionAmount == nil {
		if err := b.SetCommissionAmount(commission.GetAmountMoney()); err != nil {
			return nil, err
		}
	}

	if err := s.bookingRepo.SaveWithCommission(ctx, b, commission); err != nil {
		return nil, err
	}

	s.logger.Info("Commission backfilled",
		zap.String("booking_id", bookingID.String()),
		zap.String("amount", commission.Amount.String()))

	response := ToCommissionResponse(commission)
	return &response, nil
}

// GetByBooking retrieves the commission for a booking
func (s *CommissionService) GetByBooking(ctx context.Context, bookingID uuid.UUID) (*CommissionResponse, error) {
	commission, err := s.commissionRepo.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	response := ToCommissionResponse(commission)
	return &response, nil
}

// ListByVendor retrieves a vendor's commissions with pagination
func (s *CommissionService) ListByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]CommissionResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	commissions, err := s.commissionRepo.FindByVendor(ctx, vendorID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]CommissionResponse, len(commissions))
	for i := range commissions {
		responses[i] = ToCommissionResponse(&commissions[i])
	}
	return responses, nil
}

// SettleForBooking marks a commission as collected during vendor payout.
// Settlement requires the booking's payment to have actually landed.
func (s *CommissionService) SettleForBooking(ctx context.Context, bookingID uuid.UUID) (*CommissionResponse, error) {
	b, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.PaymentStatus != booking.PaymentStatusPaid {
		return nil, shared.NewDomainError(shared.CodePaymentNotSettled, "Commission settles only after payment is settled")
	}

	commission, err := s.commissionRepo.FindByBookingID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if err := commission.Settle(); err != nil {
		return nil, err
	}

	if err := s.commissionRepo.SaveWithLock(ctx, commission); err != nil {
		return nil, err
	}

	s.logger.Info("Commission settled",
		zap.String("booking_id", bookingID.String()),
		zap.String("amount", commission.Amount.String()))

	response := ToCommissionResponse(commission)
	return &response, nil
}

// ReverseForBooking voids the commission after a confirmed booking is
// cancelled. Missing records and already-reversed records are no-ops.
func (s *CommissionService) ReverseForBooking(ctx context.Context, bookingID uuid.UUID) error {
	commission, err := s.commissionRepo.FindByBookingID(ctx, bookingID)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil
		}
		return err
	}

	if commission.Status == booking.CommissionStatusReversed {
		return nil
	}

	if err := commission.Reverse(); err != nil {
		return err
	}

	if err := s.commissionRepo.SaveWithLock(ctx, commission); err != nil {
		return err
	}

	s.logger.Info("Commission reversed",
		zap.String("booking_id", bookingID.String()),
		zap.String("amount", commission.Amount.String()))

	return nil
}
