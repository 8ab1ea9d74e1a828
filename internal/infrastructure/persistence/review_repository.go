package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/tourbook/backend/internal/domain/catalog"
	"github.com/tourbook/backend/internal/domain/shared"
	"github.com/tourbook/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormReviewRepository implements ReviewRepository using GORM
type GormReviewRepository struct {
	db *gorm.DB
}

// NewGormReviewRepository creates a new GormReviewRepository
func NewGormReviewRepository(db *gorm.DB) *GormReviewRepository {
	return &GormReviewRepository{db: db}
}

// FindByID finds a review by its ID
func (r *GormReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Review, error) {
	var model models.ReviewModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByBooking finds the review backed by a booking, if any
func (r *GormReviewRepository) FindByBooking(ctx context.Context, bookingID uuid.UUID) (*catalog.Review, error) {
	var model models.ReviewModel
	if err := r.db.WithContext(ctx).First(&model, "booking_id = ?", bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByTour finds reviews for a tour, newest first
func (r *GormReviewRepository) FindByTour(ctx context.Context, tourID uuid.UUID, filter shared.Filter) ([]catalog.Review, error) {
	var modelList []models.ReviewModel
	query := r.db.WithContext(ctx).Model(&models.ReviewModel{}).Where("tour_id = ?", tourID)

	if filter.Page > 0 && filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		query = query.Offset(offset).Limit(filter.PageSize)
	}
	orderBy := ValidateSortField(filter.OrderBy, CommonSortFields, "created_at")
	query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))

	if err := query.Find(&modelList).Error; err != nil {
		return nil, err
	}

	reviews := make([]catalog.Review, len(modelList))
	for i := range modelList {
		reviews[i] = *modelList[i].ToDomain()
	}
	return reviews, nil
}

// Save creates or updates a review
func (r *GormReviewRepository) Save(ctx context.Context, review *catalog.Review) error {
	model := models.ReviewModelFromDomain(review)
	return r.db.WithContext(ctx).Save(model).Error
}

// Ensure GormReviewRepository implements ReviewRepository
var _ catalog.ReviewRepository = (*GormReviewRepository)(nil)
