package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	bookingapp "github.com/tourbook/backend/internal/application/booking"
	"github.com/tourbook/backend/internal/infrastructure/auth"
	"github.com/tourbook/backend/internal/interfaces/http/middleware"
)

// CommissionHandler handles commission queries and payout settlement
type CommissionHandler struct {
	BaseHandler
	commissionService *bookingapp.CommissionService
}

// NewCommissionHandler creates a new CommissionHandler
func NewCommissionHandler(commissionService *bookingapp.CommissionService) *CommissionHandler {
	return &CommissionHandler{commissionService: commissionService}
}

// RegisterRoutes registers commission routes on the given group
func (h *CommissionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/bookings/:id/commission", middleware.RequireRole(auth.RoleVendor, auth.RoleAdmin), h.GetByBooking)
	rg.POST("/bookings/:id/commission", middleware.RequireRole(auth.RoleAdmin), h.Compute)
	rg.POST("/bookings/:id/commission/settle", middleware.RequireRole(auth.RoleAdmin), h.Settle)
	rg.GET("/vendors/:id/commissions", middleware.RequireRole(auth.RoleVendor, auth.RoleAdmin), h.ListByVendor)
}

// GetByBooking retrieves the commission for a booking
func (h *CommissionHandler) GetByBooking(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid booking ID format")
		return
	}

	resp, err := h.commissionService.GetByBooking(c.Request.Context(), bookingID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Compute ensures a commission record exists for a confirmed booking.
// Safe to retry; an existing record is returned unchanged.
func (h *CommissionHandler) Compute(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid booking ID format")
		return
	}

	resp, err := h.commissionService.ComputeForBooking(c.Request.Context(), bookingID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Settle marks a commission as collected during vendor payout
func (h *CommissionHandler) Settle(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid booking ID format")
		return
	}

	resp, err := h.commissionService.SettleForBooking(c.Request.Context(), bookingID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// ListByVendor retrieves a vendor's commissions
func (h *CommissionHandler) ListByVendor(c *gin.Context) {
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
	if status := c.Query("status"); status != "" {
		filter.Filters["status"] = status
	}

	commissions, err := h.commissionService.ListByVendor(c.Request.Context(), vendorID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, commissions)
}
