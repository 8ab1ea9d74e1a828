package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	catalogapp "github.com/tourbook/backend/internal/application/catalog"
	"github.com/tourbook/backend/internal/infrastructure/auth"
	"github.com/tourbook/backend/internal/interfaces/http/middleware"
)

// ReviewHandler handles review submission and tour review listings
type ReviewHandler struct {
	BaseHandler
	reviewService *catalogapp.ReviewService
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(reviewService *catalogapp.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// RegisterRoutes registers review routes on the given group
func (h *ReviewHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/reviews", middleware.RequireRole(auth.RoleCustomer), h.Submit)
	rg.GET("/tours/:id/reviews", h.ListByTour)
}

// Submit records a customer review for a completed booking's tour
func (h *ReviewHandler) Submit(c *gin.Context) {
	customerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Customer identity required")
		return
	}

	var req catalogapp.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	resp, err := h.reviewService.Submit(c.Request.Context(), customerID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// ListByTour retrieves a tour's reviews
func (h *ReviewHandler) ListByTour(c *gin.Context) {
	tourID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid tour ID format")
		return
	}

	filter, err := bindListFilter(c)
	if err != nil {
		h.HandleBindingError(c, err)
		return
	}

	reviews, err := h.reviewService.ListByTour(c.Request.Context(), tourID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, reviews)
}
