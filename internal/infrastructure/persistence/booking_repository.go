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

// GormBookingRepository implements BookingRepository using GORM
type GormBookingRepository struct {
	db *gorm.DB
}

// NewGormBookingRepository creates a new GormBookingRepository
func NewGormBookingRepository(db *gorm.DB) *GormBookingRepository {
	return &GormBookingRepository{db: db}
}

// FindByID finds a booking by its ID
func (r *GormBookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var model models.BookingModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCustomer finds bookings created by a customer
func (r *GormBookingRepository) FindByCustomer(ctx context.Context, customerID uuid.UUID, filter shared.Filter) ([]booking.Booking, error) {
	var modelList []models.BookingModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.BookingModel{}).Where("customer_id = ?", customerID),
		filter,
	)

	if err := query.Find(&modelList).Error; err != nil {
		return nil, err
	}
	return r.toDomainList(modelList), nil
}

// FindByVendor finds bookings against a vendor's tours
func (r *GormBookingRepository) FindByVendor(ctx context.Context, vendorID uuid.UUID, filter shared.Filter) ([]booking.Booking, error) {
	var modelList []models.BookingModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.BookingModel{}).Where("vendor_id = ?", vendorID),
		filter,
	)

	if err := query.Find(&modelList).Error; err != nil {
		return nil, err
	}
	return r.toDomainList(modelList), nil
}

// FindByStatus finds bookings in a given lifecycle state
func (r *GormBookingRepository) FindByStatus(ctx context.Context, status booking.BookingStatus, filter shared.Filter) ([]booking.Booking, error) {
	var modelList []models.BookingModel
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&models.BookingModel{}).Where("status = ?", status),
		filter,
	)

	if err := query.Find(&modelList).Error; err != nil {
		return nil, err
	}
	return r.toDomainList(modelList), nil
}

// Count counts bookings matching the filter
func (r *GormBookingRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.applyFilterWithoutPagination(r.db.WithContext(ctx).Model(&models.BookingModel{}), filter)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a booking
func (r *GormBookingRepository) Save(ctx context.Context, b *booking.Booking) error {
	model := models.BookingModelFromDomain(b)
	return r.db.WithContext(ctx).Save(model).Error
}

// SaveWithLock saves with optimistic locking (version check)
func (r *GormBookingRepository) SaveWithLock(ctx context.Context, b *booking.Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return saveBookingLocked(tx, b)
	})
}

// SaveWithCommission persists the confirmed booking and its commission record
// in one transaction, so a confirmed booking never lands without its
// commission row.
func (r *GormBookingRepository) SaveWithCommission(ctx context.Context, b *booking.Booking, c *booking.Commission) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := saveBookingLocked(tx, b); err != nil {
			return err
		}
		return tx.Save(models.CommissionModelFromDomain(c)).Error
	})
}

// saveBookingLocked performs the optimistic-locked update inside tx
func saveBookingLocked(tx *gorm.DB, b *booking.Booking) error {
	currentVersion := b.Version
	b.Version++
	b.UpdatedAt = time.Now()

	result := tx.Model(&models.BookingModel{}).
		Where("id = ? AND version = ?", b.ID, currentVersion).
		Updates(map[string]interface{}{
			"guests":            b.Guests,
			"guest_details":     b.GuestDetails,
			"tour_start_date":   b.TourStartDate,
			"total_amount":      b.TotalAmount,
			"status":            b.Status,
			"payment_status":    b.PaymentStatus,
			"commission_amount": b.CommissionAmount,
			"confirmed_at":      b.ConfirmedAt,
			"cancelled_at":      b.CancelledAt,
			"completed_at":      b.CompletedAt,
			"version":           b.Version,
			"updated_at":        b.UpdatedAt,
		})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		b.Version = currentVersion
		return shared.ErrConcurrencyConflict
	}
	return nil
}

func (r *GormBookingRepository) toDomainList(modelList []models.BookingModel) []booking.Booking {
	bookings := make([]booking.Booking, len(modelList))
	for i := range modelList {
		bookings[i] = *modelList[i].ToDomain()
	}
	return bookings
}

func (r *GormBookingRepository) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	orderBy := ValidateSortField(filter.OrderBy, BookingSortFields, "created_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	return query
}

func (r *GormBookingRepository) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	for key, value := range filter.Filters {
		switch key {
		case "customer_id":
			query = query.Where("customer_id = ?", value)
		case "vendor_id":
			query = query.Where("vendor_id = ?", value)
		case "tour_id":
			query = query.Where("tour_id = ?", value)
		case "status":
			query = query.Where("status = ?", value)
		case "payment_status":
			query = query.Where("payment_status = ?", value)
		case "start_date":
			if t, ok := value.(time.Time); ok {
				query = query.Where("tour_start_date >= ?", t)
			}
		case "end_date":
			if t, ok := value.(time.Time); ok {
				query = query.Where("tour_start_date <= ?", t)
			}
		}
	}

	return query
}

// Ensure GormBookingRepository implements BookingRepository
var _ booking.BookingRepository = (*GormBookingRepository)(nil)
