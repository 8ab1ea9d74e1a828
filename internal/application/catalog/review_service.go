package catalog

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tourbook/backend/internal/domain/booking"
	"github.com/tourbook/backend/internal/domain/catalog"
	"github.com/tourbook/backend/internal/domain/shared"
)

// RatingRecorder folds review ratings into the vendor's rolling average
type RatingRecorder interface {
	RecordReview(ctx context.Context, vendorID uuid.UUID, rating int) error
}

// ReviewService handles review submission. Only the customer who completed
// the booking may review, and only once per booking.
type ReviewService struct {
	reviewRepo  catalog.ReviewRepository
	bookingRepo booking.BookingRepository
	rating      RatingRecorder
	logger      *zap.Logger
}

// NewReviewService creates a new ReviewService
func NewReviewService(
	reviewRepo catalog.ReviewRepository,
	bookingRepo booking.BookingRepository,
	rating RatingRecorder,
	logger *zap.Logger,
) *ReviewService {
	return &ReviewService{
		reviewRepo:  reviewRepo,
		bookingRepo: bookingRepo,
		rating:      rating,
		logger:      logger,
	}
}

// Submit records a review for a completed booking
func (s *ReviewService) Submit(ctx context.Context, customerID uuid.UUID, req SubmitReviewRequest) (*ReviewResponse, error) {
	b, err := s.bookingRepo.FindByID(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	if b.CustomerID != customerID {
		return nil, shared.ErrForbidden
	}
	if b.Status != booking.BookingStatusCompleted {
		return nil, shared.NewDomainError("BOOKING_NOT_COMPLETED", "Only completed bookings can be reviewed")
	}

	// One review per booking; the unique index on booking_id backs this up
	// against concurrent submissions.
	if _, err := s.reviewRepo.FindByBooking(ctx, b.ID); err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Booking has already been reviewed")
	} else if err != shared.ErrNotFound {
		return nil, err
	}

	review, err := catalog.NewReview(b.ID, b.TourID, customerID, b.VendorID, req.Rating, req.Comment)
	if err != nil {
		return nil, err
	}

	if err := s.reviewRepo.Save(ctx, review); err != nil {
		return nil, err
	}

	if err := s.rating.RecordReview(ctx, b.VendorID, req.Rating); err != nil {
		// The review itself is stored; the denormalized average catches up
		// on the next submission.
		s.logger.Warn("Failed to update vendor rating",
			zap.String("vendor_id", b.VendorID.String()),
			zap.Error(err))
	}

	s.logger.Info("Review submitted",
		zap.String("review_id", review.ID.String()),
		zap.String("tour_id", b.TourID.String()),
		zap.Int("rating", req.Rating))

	response := ToReviewResponse(review)
	return &response, nil
}

// ListByTour retrieves reviews for a tour with pagination
func (s *ReviewService) ListByTour(ctx context.Context, tourID uuid.UUID, filter shared.Filter) ([]ReviewResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	reviews, err := s.reviewRepo.FindByTour(ctx, tourID, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]ReviewResponse, len(reviews))
	for i := range reviews {
		responses[i] = ToReviewResponse(&reviews[i])
	}
	return responses, nil
}
