package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appvendor "github.com/tourbook/backend/internal/application/vendor"
	"github.com/tourbook/backend/internal/domain/catalog"
	"github.com/tourbook/backend/internal/domain/shared"
	"github.com/tourbook/backend/internal/domain/shared/valueobject"
)

func newApprovedTour(t *testing.T) *catalog.Tour {
	t.Helper()
	tour, err := catalog.NewTour(uuid.New(), "Desert Stargazing Camp", valueobject.NewMoneyUSDFromFloat(180), 6, 2)
	require.NoError(t, err)
	require.NoError(t, tour.Approve())
	return tour
}

func TestTourService_Create(t *testing.T) {
	tourRepo := new(MockTourRepository)
	quota := new(MockQuotaManager)
	service := NewTourService(tourRepo, quota, zap.NewNop())

	vendorID := uuid.New()
	quota.On("CheckCapacity", mock.Anything, vendorID).Return(&appvendor.CapacityResponse{
		Allowed: true, TourLimit: 10, CurrentTours: 3, Remaining: 7,
	}, nil)
	tourRepo.On("Save", mock.Anything, mock.AnythingOfType("*catalog.Tour")).Return(nil)

	resp, err := service.Create(context.Background(), vendorID, CreateTourRequest{
		Name:         "Desert Stargazing Camp",
		Price:        decimal.NewFromInt(180),
		MaxGuests:    6,
		DurationDays: 2,
	})
	require.NoError(t, err)
	assert.False(t, resp.IsActive)
	assert.False(t, resp.IsApproved)
	tourRepo.AssertExpectations(t)
}

func TestTourService_Create_NoCapacity(t *testing.T) {
	tourRepo := new(MockTourRepository)
	quota := new(MockQuotaManager)
	service := NewTourService(tourRepo, quota, zap.NewNop())

	vendorID := uuid.New()
	quota.On("CheckCapacity", mock.Anything, vendorID).Return(&appvendor.CapacityResponse{
		Allowed: false, TourLimit: 10, CurrentTours: 10, Remaining: 0,
	}, nil)

	_, err := service.Create(context.Background(), vendorID, CreateTourRequest{
		Name:         "One Trek Too Many",
		Price:        decimal.NewFromInt(99),
		MaxGuests:    4,
		DurationDays: 1,
	})
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, shared.CodeQuotaExceeded, domainErr.Code)
	tourRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestTourService_Activate(t *testing.T) {
	tourRepo := new(MockTourRepository)
	quota := new(MockQuotaManager)
	service := NewTourService(tourRepo, quota, zap.NewNop())

	tour := newApprovedTour(t)
	tourRepo.On("FindByID", mock.Anything, tour.ID).Return(tour, nil)
	quota.On("ReserveTourSlot", mock.Anything, tour.VendorID).Return(nil)
	tourRepo.On("SaveWithLock", mock.Anything, tour).Return(nil)

	resp, err := service.Activate(context.Background(), tour.ID)
	require.NoError(t, err)
	assert.True(t, resp.IsActive)
	quota.AssertExpectations(t)
}

func TestTourService_Activate_QuotaExceeded(t *testing.T) {
	tourRepo := new(MockTourRepository)
	quota := new(MockQuotaManager)
	service := NewTourService(tourRepo, quota, zap.NewNop())

	tour := newApprovedTour(t)
	tourRepo.On("FindByID", mock.Anything, tour.ID).Return(tour, nil)
	quota.On("ReserveTourSlot", mock.Anything, tour.VendorID).
		Return(shared.NewDomainError(shared.CodeQuotaExceeded, "Tour quota exceeded"))

	_, err := service.Activate(context.Background(), tour.ID)
	require.Error(t, err)
	assert.False(t, tour.IsActive)
	tourRepo.AssertNotCalled(t, "SaveWithLock", mock.Anything, mock.Anything)
}

func TestTourService_Activate_SlotReturnedOnFailure(t *testing.T) {
	tourRepo := new(MockTourRepository)
	quota := new(MockQuotaManager)
	service := NewTourService(tourRepo, quota, zap.NewNop())

	// unapproved tour: reservation succeeds, activation fails, slot goes back
	tour, err := catalog.NewTour(uuid.New(), "Unreviewed Trek", valueobject.NewMoneyUSDFromFloat(80), 4, 1)
	require.NoError(t, err)

	tourRepo.On("FindByID", mock.Anything, tour.ID).Return(tour, nil)
	quota.On("ReserveTourSlot", mock.Anything, tour.VendorID).Return(nil)
	quota.On("ReleaseTourSlot", mock.Anything, tour.VendorID).Return(nil)

	_, err = service.Activate(context.Background(), tour.ID)
	require.Error(t, err)
	quota.AssertCalled(t, "ReleaseTourSlot", mock.Anything, tour.VendorID)
}

func TestTourService_Deactivate(t *testing.T) {
	tourRepo := new(MockTourRepository)
	quota := new(MockQuotaManager)
	service := NewTourService(tourRepo, quota, zap.NewNop())

	tour := newApprovedTour(t)
	require.NoError(t, tour.Activate())
	tour.ClearDomainEvents()

	tourRepo.On("FindByID", mock.Anything, tour.ID).Return(tour, nil)
	tourRepo.On("SaveWithLock", mock.Anything, tour).Return(nil)
	quota.On("ReleaseTourSlot", mock.Anything, tour.VendorID).Return(nil)

	resp, err := service.Deactivate(context.Background(), tour.ID)
	require.NoError(t, err)
	assert.False(t, resp.IsActive)
	quota.AssertExpectations(t)
}

func TestTourService_Approve(t *testing.T) {
	tourRepo := new(MockTourRepository)
	quota := new(MockQuotaManager)
	service := NewTourService(tourRepo, quota, zap.NewNop())

	tour, err := catalog.NewTour(uuid.New(), "Rainforest Canopy Walk", valueobject.NewMoneyUSDFromFloat(60), 10, 1)
	require.NoError(t, err)

	tourRepo.On("FindByID", mock.Anything, tour.ID).Return(tour, nil)
	tourRepo.On("SaveWithLock", mock.Anything, tour).Return(nil)

	resp, err := service.Approve(context.Background(), tour.ID)
	require.NoError(t, err)
	assert.True(t, resp.IsApproved)

	// quota is untouched by moderation
	quota.AssertNotCalled(t, "ReserveTourSlot", mock.Anything, mock.Anything)
}
