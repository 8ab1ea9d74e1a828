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

// GormVendorRepository implements VendorRepository using GORM
type GormVendorRepository struct {
	db *gorm.DB
}

// NewGormVendorRepository creates a new GormVendorRepository
func NewGormVendorRepository(db *gorm.DB) *GormVendorRepository {
	return &GormVendorRepository{db: db}
}

// FindByID finds a vendor by its ID
func (r *GormVendorRepository) FindByID(ctx context.Context, id uuid.UUID) (*vendor.Vendor, error) {
	var model models.VendorModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all vendors with filtering
func (r *GormVendorRepository) FindAll(ctx context.Context, filter shared.Filter) ([]vendor.Vendor, error) {
	var modelList []models.VendorModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.VendorModel{}), filter)

	if err := query.Find(&modelList).Error; err != nil {
		return nil, err
	}

	vendors := make([]vendor.Vendor, len(modelList))
	for i := range modelList {
		vendors[i] = *modelList[i].ToDomain()
	}
	return vendors, nil
}

// Count counts vendors matching the filter
func (r *GormVendorRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.VendorModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a vendor
func (r *GormVendorRepository) Save(ctx context.Context, v *vendor.Vendor) error {
	model := models.VendorModelFromDomain(v)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveWithLock saves with optimistic locking (version check)
func (r *GormVendorRepository) SaveWithLock(ctx context.Context, v *vendor.Vendor) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		currentVersion := v.Version
		v.Version++
		v.UpdatedAt = time.Now()

		result := tx.Model(&models.VendorModel{}).
			Where("id = ? AND version = ?", v.ID, currentVersion).
			Updates(map[string]interface{}{
				"business_name":   v.BusinessName,
				"is_active":       v.IsActive,
				"subscription_id": v.SubscriptionID,
				"rating":          v.Rating,
				"total_reviews":   v.TotalReviews,
				"version":         v.Version,
				"updated_at":      v.UpdatedAt,
			})

		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			v.Version = currentVersion
			return shared.ErrConcurrencyConflict
		}
		return nil
	})
}

func (r *GormVendorRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, VendorSortFields, "created_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

func (r *GormVendorRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("business_name ILIKE ?", "%"+filter.Search+"%")
	}

	for key, value := range filter.Filters {
		switch key {
		case "is_active":
			query = query.Where("is_active = ?", value)
		}
	}

	return query
}

// Ensure GormVendorRepository implements VendorRepository
var _ vendor.VendorRepository = (*GormVendorRepository)(nil)
