package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	bookingapp "github.com/tourbook/backend/internal/application/booking"
	"github.com/tourbook/backend/internal/infrastructure/auth"
	"github.com/tourbook/backend/internal/interfaces/http/middleware"
)

// BookingHandler handles the booking lifecycle endpoints
type BookingHandler struct {
	BaseHandler
	bookingService *bookingapp.BookingService
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(bookingService *bookingapp.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// RegisterRoutes registers booking routes on the given group
func (h *BookingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	bookings := rg.Group("/bookings")
	{
		bookings.POST("", middleware.RequireRole(auth.RoleCustomer), h.Create)
		bookings.GET("", middleware.RequireRole(auth.RoleCustomer), h.ListMine)
		bookings.GET("/:id", h.GetByID)
		bookings.POST("/:id/confirm", h.Confirm)
		bookings.POST("/:id/cancel", h.Cancel)
		bookings.POST("/:id/complete", middleware.RequireRole(auth.RoleVendor, auth.RoleAdmin), h.Complete)
	}

	rg.GET("/vendors/:id/bookings", middleware.RequireRole(auth.RoleVendor, auth.RoleAdmin), h.ListByVendor)
}

// Create books a tour for the authenticated customer. The booking starts
// PENDING; nothing is persisted when a precondition fails.
func (h *BookingHandler) Create(c *gin.Context) {
	customerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Customer identity required")
		return
	}

	var req bookingapp.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	resp, err := h.bookingService.Create(c.Request.Context(), customerID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// GetByID retrieves a booking by ID
func (h *BookingHandler) GetByID(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid booking ID format")
		return
	}

	resp, err := h.bookingService.GetByID(c.Request.Context(), bookingID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// ListMine retrieves the authenticated customer's bookings
func (h *BookingHandler) ListMine(c *gin.Context) {
	customerID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Customer identity required")
		return
	}

	filter, err := bindListFilter(c)
	if err != nil {
		h.HandleBindingError(c, err)
		return
	}

	bookings, err := h.bookingService.ListByCustomer(c.Request.Context(), customerID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, bookings)
}

// ListByVendor retrieves a vendor's bookings
func (h *BookingHandler) ListByVendor(c *gin.Context) {
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

	bookings, err := h.bookingService.ListByVendor(c.Request.Context(), vendorID, filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, bookings)
}

// Confirm transitions a paid booking from PENDING to CONFIRMED and records
// the platform commission in the same transaction
func (h *BookingHandler) Confirm(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid booking ID format")
		return
	}

	resp, err := h.bookingService.Confirm(c.Request.Context(), bookingID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Cancel cancels a pending or confirmed booking
func (h *BookingHandler) Cancel(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid booking ID format")
		return
	}

	var req bookingapp.CancelBookingRequest
	// Reason is optional; allow an empty body
	_ = c.ShouldBindJSON(&req)

	resp, err := h.bookingService.Cancel(c.Request.Context(), bookingID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Complete marks a confirmed booking as completed once the tour has started
func (h *BookingHandler) Complete(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid booking ID format")
		return
	}

	resp, err := h.bookingService.Complete(c.Request.Context(), bookingID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}
