package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tourbook/backend/internal/domain/shared"
	"github.com/tourbook/backend/internal/domain/vendor"
	"github.com/tourbook/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormSubscriptionRepository implements SubscriptionRepository using GORM
type GormSubscriptionRepository struct {
	db *gorm.DB
}

// NewGormSubscriptionRepository creates a new GormSubscriptionRepository
func NewGormSubscriptionRepository(db *gorm.DB) *GormSubscriptionRepository {
	return &GormSubscriptionRepository{db: db}
}

// FindByID finds a subscription by its ID
func (r *GormSubscriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*vendor.Subscription, error) {
	var model models.SubscriptionModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindActiveByVendor finds the vendor's single active subscription. When a
// vendor somehow has several, the most recently started wins.
func (r *GormSubscriptionRepository) FindActiveByVendor(ctx context.Context, vendorID uuid.UUID) (*vendor.Subscription, error) {
	var model models.SubscriptionModel
	if err := r.db.WithContext(ctx).
		Where("vendor_id = ? AND is_active = ?", vendorID, true).
		Order("start_date DESC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates a subscription
func (r *GormSubscriptionRepository) Save(ctx context.Context, s *vendor.Subscription) error {
	model := models.SubscriptionModelFromDomain(s)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveWithLock saves with optimistic locking (version check). Concurrent slot
// reservations against the same subscription serialize on the version column:
// the loser gets ErrConcurrencyConflict and retries against fresh state.
func (r *GormSubscriptionRepository) SaveWithLock(ctx context.Context, s *vendor.Subscription) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		currentVersion := s.Version
		s.Version++
		s.UpdatedAt = time.Now()

		result := tx.Model(&models.SubscriptionModel{}).
			Where("id = ? AND version = ?", s.ID, currentVersion).
			Updates(map[string]interface{}{
				"plan_type":     s.PlanType,
				"tour_limit":    s.TourLimit,
				"current_tours": s.CurrentTours,
				"start_date":    s.StartDate,
				"end_date":      s.EndDate,
				"is_active":     s.IsActive,
				"version":       s.Version,
				"updated_at":    s.UpdatedAt,
			})

		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			s.Version = currentVersion
			return shared.ErrConcurrencyConflict
		}
		return nil
	})
}

// Ensure GormSubscriptionRepository implements SubscriptionRepository
var _ vendor.SubscriptionRepository = (*GormSubscriptionRepository)(nil)
