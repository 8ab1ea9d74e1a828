package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	catalogapp "github.com/tourbook/backend/internal/application/catalog"
	"github.com/tourbook/backend/internal/infrastructure/auth"
	"github.com/tourbook/backend/internal/interfaces/http/middleware"
)

// TourHandler handles tour catalog endpoints: creation, approval, activation,
// and listing projections.
type TourHandler struct {
	BaseHandler
	tourService *catalogapp.TourService
}

// NewTourHandler creates a new TourHandler
func NewTourHandler(tourService *catalogapp.TourService) *TourHandler {
	return &TourHandler{tourService: tourService}
}

// RegisterRoutes registers tour routes on the given group
func (h *TourHandler) RegisterRoutes(rg *gin.RouterGroup) {
	tours := rg.Group("/tours")
	{
		tours.POST("", middleware.RequireRole(auth.RoleVendor), h.Create)
		tours.GET("", h.List)
		tours.GET("/:id", h.GetByID)
		tours.POST("/:id/approve", middleware.RequireRole(auth.RoleAdmin), h.Approve)
		tours.POST("/:id/activate", middleware.RequireRole(auth.RoleVendor, auth.RoleAdmin), h.Activate)
		tours.POST("/:id/deactivate", middleware.RequireRole(auth.RoleVendor, auth.RoleAdmin), h.Deactivate)
		tours.PUT("/:id/discount", middleware.RequireRole(auth.RoleVendor), h.SetDiscount)
	}

	rg.GET("/vendors/:id/tours", h.ListByVendor)
}

// Create creates a new tour listing for the authenticated vendor.
// The tour starts unapproved and inactive; no quota slot is consumed yet.
func (h *TourHandler) Create(c *gin.Context) {
	vendorID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Vendor identity required")
		return
	}

	var req catalogapp.CreateTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	resp, err := h.tourService.Create(c.Request.Context(), vendorID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// GetByID retrieves a tour by ID
func (h *TourHandler) GetByID(c *gin.Context) {
	tourID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid tour ID format")
		return
	}

	resp, err := h.tourService.GetByID(c.Request.Context(), tourID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// List retrieves a paginated tour listing. Pass bookable=true to restrict
// to active, approved tours.
func (h *TourHandler) List(c *gin.Context) {
	filter, err := bindListFilter(c)
	if err != nil {
		h.HandleBindingError(c, err)
		return
	}
	if c.Query("bookable") == "true" {
		filter.Filters["bookable"] = true
	}

	tours, total, err := h.tourService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, tours, total, filter.Page, filter.PageSize)
}

// ListByVendor retrieves a vendor's tours
func (h *TourHandler) ListByVendor(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid vendor ID format")
		return
	}

	filter, err := bindListFilter(c)
	if err != nil {
		h.HandleBindingError(c, err)
		return
	}

	tours, err := h.tourService.ListByVendor(c.Request.Context(), vendorID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, tours)
}

// Approve marks a tour as approved by platform staff
func (h *TourHandler) Approve(c *gin.Context) {
	tourID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid tour ID format")
		return
	}

	resp, err := h.tourService.Approve(c.Request.Context(), tourID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Activate publishes an approved tour, reserving a subscription quota slot
func (h *TourHandler) Activate(c *gin.Context) {
	tourID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid tour ID format")
		return
	}

	resp, err := h.tourService.Activate(c.Request.Context(), tourID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Deactivate unpublishes a tour, releasing its quota slot
func (h *TourHandler) Deactivate(c *gin.Context) {
	tourID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid tour ID format")
		return
	}

	resp, err := h.tourService.Deactivate(c.Request.Context(), tourID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// SetDiscount sets or clears the tour's struck-through display price
func (h *TourHandler) SetDiscount(c *gin.Context) {
	tourID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid tour ID format")
		return
	}

	var req catalogapp.UpdateDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	resp, err := h.tourService.SetDiscount(c.Request.Context(), tourID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}
