package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tourbook/backend/internal/domain/booking"
	"github.com/tourbook/backend/internal/domain/shared"
	"github.com/tourbook/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormCommissionRepository implements CommissionRepository using GORM
type GormCommissionRepository struct {
	db *gorm.DB
}

// NewGormCommissionRepository creates a new GormCommissionRepository
func NewGormCommissionRepository(db *gorm.DB) *GormCommissionRepository {
	return &GormCommissionRepository{db: db}
}

// FindByID finds a commission by its ID
func (r *GormCommissionRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Commission, error) {
	var model models.CommissionModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByBookingID finds the commission for a booking. At most one exists; the
// unique index on booking_id guarantees it.
func (r *GormCommissionRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) (*booking.Commission, error) {
	var model models.CommissionModel
	if err := r.db.WithContext(ctx).First(&model, "booking_id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByVendor finds commissions on a vendor's bookings
func (r *GormCommissionRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]booking.Commission, error) {
	var modelList []models.CommissionModel
	query := r.db.WithContext(ctx).Model(&models.CommissionModel{}).Where("vendor_id = ?", vendorID)

	for key, value := range filter.Filters {
		switch key {
		case "status":
			query = query.Where("status = ?", value)
		}
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	orderBy := ValidateSortField(filter.OrderBy, CommissionSortFields, "created_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	if err := query.Find(&modelList).Error; err != nil {
		return nil, err
	}

	commissions := make([]booking.Commission, len(modelList))
	for i := range modelList {
		commissions[i] = *modelList[i].ToDomain()
	}
	return commissions, nil
}

// Save creates or updates a commission
func (r *GormCommissionRepository) Save(ctx context.Context, c *booking.Commission) error {
	model := models.CommissionModelFromDomain(c)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveWithLock saves with optimistic locking (version check)
func (r *GormCommissionRepository) SaveWithLock(ctx context.Context, c *booking.Commission) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		currentVersion := c.Version
		c.Version++
		c.UpdatedAt = time.Now()

		result := tx.Model(&models.CommissionModel{}).
			Where("id = ? AND version = ?", c.ID, currentVersion).
			Updates(map[string]interface{}{
				"status":      c.Status,
				"settled_at":  c.SettledAt,
				"reversed_at": c.ReversedAt,
				"version":     c.Version,
				"updated_at":  c.UpdatedAt,
			})

		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			c.Version = currentVersion
			return shared.ErrConcurrencyConflict
		}
		return nil
	})
}

// Ensure GormCommissionRepository implements CommissionRepository
var _ booking.CommissionRepository = (*GormCommissionRepository)(nil)
