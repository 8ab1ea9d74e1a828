package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/tourbook/backend/internal/domain/catalog"
	"github.com/tourbook/backend/internal/domain/shared"
	"github.com/tourbook/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormTourRepository implements TourRepository using GORM
type GormTourRepository struct {
	db *gorm.DB
}

// NewGormTourRepository creates a new GormTourRepository
func NewGormTourRepository(db *gorm.DB) *GormTourRepository {
	return &GormTourRepository{db: db}
}

// FindByID finds a tour by its ID
func (r *GormTourRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Tour, error) {
	var model models.TourModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds all tours with filtering
func (r *GormTourRepository) FindAll(ctx context.Context, filter shared.Filter) ([]catalog.Tour, error) {
	var modelList []models.TourModel
	query := r.applyFilter(r.db.WithContext(ctx).Model(&models.TourModel{}), filter)

	if err := query.Find(&modelList).Error; err != nil {
		return nil, err
	}
	return r.toDomainList(modelList), nil
}

// FindByVendor finds all tours belonging to a vendor
func (r *GormTourRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]catalog.Tour, error) {
	var modelList []models.TourModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.TourModel{}).Where("vendor_id = ?", vendorID),
		filter,
	)

	if err := query.Find(&modelList).Error; err != nil {
		return nil, err
	}
	return r.toDomainList(modelList), nil
}

// Count counts tours matching the filter
func (r *GormTourRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.TourModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountActiveTours counts tours that are currently live and sellable.
func (r *GormTourRepository) CountActiveTours(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.TourModel{}).
		Where("is_active = ? AND is_approved = ?", true, true).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CountActiveByVendor counts a vendor's live, sellable tours. Plan purchases
// seed the replacement subscription's quota counter from this figure.
func (r *GormTourRepository) CountActiveByVendor(ctx context.Context, vendorID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.TourModel{}).
		Where("vendor_id = ? AND is_active = ? AND is_approved = ?", vendorID, true, true).
		Count(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a tour
func (r *GormTourRepository) Save(ctx context.Context, t *catalog.Tour) error {
	model := models.TourModelFromDomain(t)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveWithLock saves with optimistic locking (version check)
func (r *GormTourRepository) SaveWithLock(ctx context.Context, t *catalog.Tour) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		currentVersion := t.Version
		t.Version++
		t.UpdatedAt = time.Now()

		result := tx.Model(&models.TourModel{}).
			Where("id = ? AND version = ?", t.ID, currentVersion).
			Updates(map[string]interface{}{
				"name":           t.Name,
				"price":          t.Price,
				"discount_price": t.DiscountPrice,
				"max_guests":     t.MaxGuests,
				"duration_days":  t.DurationDays,
				"is_active":      t.IsActive,
				"is_approved":    t.IsApproved,
				"approved_at":    t.ApprovedAt,
				"version":        t.Version,
				"updated_at":     t.UpdatedAt,
			})

		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			t.Version = currentVersion
			return shared.ErrConcurrencyConflict
		}
		return nil
	})
}

// Delete deletes a tour
func (r *GormTourRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.TourModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

func (r *GormTourRepository) toDomainList(modelList []models.TourModel) []catalog.Tour {
	tours := make([]catalog.Tour, len(modelList))
	for i := range modelList {
		tours[i] = *modelList[i].ToDomain()
	}
	return tours
}

func (r *GormTourRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, TourSortFields, "created_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

func (r *GormTourRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Search+"%")
	}

	for key, value := range filter.Filters {
		switch key {
		case "vendor_id":
			query = query.Where("vendor_id = ?", value)
		case "is_active":
			query = query.Where("is_active = ?", value)
		case "is_approved":
			query = query.Where("is_approved = ?", value)
		case "bookable":
			if bookable, ok := value.(bool); ok && bookable {
				query = query.Where("is_active AND is_approved")
			}
		}
	}

	return query
}

// Ensure GormTourRepository implements TourRepository
var _ catalog.TourRepository = (*GormTourRepository)(nil)
