package catalog

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appvendor "github.com/tourbook/backend/internal/application/vendor"
	"github.com/tourbook/backend/internal/domain/catalog"
	"github.com/tourbook/backend/internal/domain/shared"
	"github.com/tourbook/backend/internal/domain/shared/valueobject"
)

// QuotaManager is the slice of the vendor quota service the tour lifecycle
// needs. Activation reserves a slot, deactivation releases it, creation only
// checks headroom.
type QuotaManager interface {
	ReserveTourSlot(ctx context.Context, vendorID uuid.UUID) error
	ReleaseTourSlot(ctx context.Context, vendorID uuid.UUID) error
	CheckCapacity(ctx context.Context, vendorID uuid.UUID) (*appvendor.CapacityResponse, error)
}

// TourService handles the tour listing lifecycle
type TourService struct {
	tourRepo       catalog.TourRepository
	quota          QuotaManager
	eventPublisher shared.EventPublisher
	logger         *zap.Logger
}

// NewTourService creates a new TourService
func NewTourService(tourRepo catalog.TourRepository, quota QuotaManager, logger *zap.Logger) *TourService {
	return &TourService{
		tourRepo: tourRepo,
		quota:    quota,
		logger:   logger,
	}
}

// SetEventPublisher sets the event publisher for cross-context integration
func (s *TourService) SetEventPublisher(publisher shared.EventPublisher) {
	s.eventPublisher = publisher
}

// Create creates a new tour listing. The quota is checked as a pre-flight so
// vendors learn about exhausted plans early, but the slot itself is only
// consumed at activation.
func (s *TourService) Create(ctx context.Context, vendorID uuid.UUID, req CreateTourRequest) (*TourResponse, error) {
	capacity, err := s.quota.CheckCapacity(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	if !capacity.Allowed {
		return nil, shared.NewDomainError(shared.CodeQuotaExceeded,
			"Plan tour limit reached; upgrade the plan or deactivate a tour first")
	}

	tour, err := catalog.NewTour(vendorID, req.Name, valueobject.NewMoneyUSD(req.Price), req.MaxGuests, req.DurationDays)
	if err != nil {
		return nil, err
	}

	if req.DiscountPrice != nil {
		if err := tour.SetDiscountPrice(valueobject.NewMoneyUSD(*req.DiscountPrice)); err != nil {
			return nil, err
		}
	}

	if err := s.tourRepo.Save(ctx, tour); err != nil {
		return nil, err
	}

	s.logger.Info("Tour created",
		zap.String("tour_id", tour.ID.String()),
		zap.String("vendor_id", vendorID.String()),
		zap.String("name", tour.Name))

	response := ToTourResponse(tour)
	return &response, nil
}

// GetByID retrieves a tour by ID
func (s *TourService) GetByID(ctx context.Context, tourID uuid.UUID) (*TourResponse, error) {
	tour, err := s.tourRepo.FindByID(ctx, tourID)
	if err != nil {
		return nil, err
	}
	response := ToTourResponse(tour)
	return &response, nil
}

// List retrieves tours with pagination
func (s *TourService) List(ctx context.Context, filter shared.Filter) ([]TourResponse, int64, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	tours, err := s.tourRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.tourRepo.Count(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]TourResponse, len(tours))
	for i := range tours {
		responses[i] = ToTourResponse(&tours[i])
	}
	return responses, total, nil
}

// ListByVendor retrieves the vendor's tours with pagination
func (s *TourService) ListByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]TourResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}

	tours, err := s.tourRepo.FindByVendor(ctx, vendorID, filter)
	if err != nil {
		return nil, err
	}
	responses := make([]TourResponse, len(tours))
	for i := range tours {
		responses[i] = ToTourResponse(&tours[i])
	}
	return responses, nil
}

// Approve flips the moderation gate on a tour
func (s *TourService) Approve(ctx context.Context, tourID uuid.UUID) (*TourResponse, error) {
	tour, err := s.tourRepo.FindByID(ctx, tourID)
	if err != nil {
		return nil, err
	}

	if err := tour.Approve(); err != nil {
		return nil, err
	}

	if err := s.tourRepo.SaveWithLock(ctx, tour); err != nil {
		return nil, err
	}

	s.publishEvents(ctx, tour)

	response := ToTourResponse(tour)
	return &response, nil
}

// Activate puts an approved tour on sale, consuming one quota slot.
// The slot is returned if activation cannot complete.
func (s *TourService) Activate(ctx context.Context, tourID uuid.UUID) (*TourResponse, error) {
	tour, err := s.tourRepo.FindByID(ctx, tourID)
	if err != nil {
		return nil, err
	}

	if err := s.quota.ReserveTourSlot(ctx, tour.VendorID); err != nil {
		return nil, err
	}

	if err := tour.Activate(); err != nil {
		s.releaseSlot(ctx, tour.VendorID)
		return nil, err
	}

	if err := s.tourRepo.SaveWithLock(ctx, tour); err != nil {
		s.releaseSlot(ctx, tour.VendorID)
		return nil, err
	}

	s.publishEvents(ctx, tour)

	s.logger.Info("Tour activated",
		zap.String("tour_id", tour.ID.String()),
		zap.String("vendor_id", tour.VendorID.String()))

	response := ToTourResponse(tour)
	return &response, nil
}

// Deactivate takes a tour off sale and returns its quota slot
func (s *TourService) Deactivate(ctx context.Context, tourID uuid.UUID) (*TourResponse, error) {
	tour, err := s.tourRepo.FindByID(ctx, tourID)
	if err != nil {
		return nil, err
	}

	if err := tour.Deactivate(); err != nil {
		return nil, err
	}

	if err := s.tourRepo.SaveWithLock(ctx, tour); err != nil {
		return nil, err
	}

	if err := s.quota.ReleaseTourSlot(ctx, tour.VendorID); err != nil {
		// The tour is already off sale. A failed release leaves the quota
		// over-counted, which only under-admits new tours, so log and move on.
		s.logger.Error("Failed to release tour slot",
			zap.String("tour_id", tour.ID.String()),
			zap.String("vendor_id", tour.VendorID.String()),
			zap.Error(err))
	}

	s.publishEvents(ctx, tour)

	response := ToTourResponse(tour)
	return &response, nil
}

// SetDiscount updates or clears the display discount price
func (s *TourService) SetDiscount(ctx context.Context, tourID uuid.UUID, req UpdateDiscountRequest) (*TourResponse, error) {
	tour, err := s.tourRepo.FindByID(ctx, tourID)
	if err != nil {
		return nil, err
	}

	if req.DiscountPrice == nil {
		tour.ClearDiscountPrice()
	} else if err := tour.SetDiscountPrice(valueobject.NewMoneyUSD(*req.DiscountPrice)); err != nil {
		return nil, err
	}

	if err := s.tourRepo.SaveWithLock(ctx, tour); err != nil {
		return nil, err
	}

	response := ToTourResponse(tour)
	return &response, nil
}

func (s *TourService) releaseSlot(ctx context.Context, vendorID uuid.UUID) {
	if err := s.quota.ReleaseTourSlot(ctx, vendorID); err != nil {
		s.logger.Error("Failed to return reserved tour slot",
			zap.String("vendor_id", vendorID.String()),
			zap.Error(err))
	}
}

func (s *TourService) publishEvents(ctx context.Context, tour *catalog.Tour) {
	if s.eventPublisher == nil {
		return
	}
	for _, event := range tour.GetDomainEvents() {
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.logger.Warn("Failed to publish tour event",
				zap.String("event_type", event.EventType()),
				zap.Error(err))
		}
	}
	tour.ClearDomainEvents()
}
