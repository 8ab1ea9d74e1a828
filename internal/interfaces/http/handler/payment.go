package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	bookingapp "github.com/tourbook/backend/internal/application/booking"
)

// PaymentHandler handles payment gateway callback endpoints. These are the
// only entry points that mutate a booking's payment status; the gateway
// authenticates upstream of this service, so the routes skip JWT auth.
type PaymentHandler struct {
	BaseHandler
	bookingService *bookingapp.BookingService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(bookingService *bookingapp.BookingService) *PaymentHandler {
	return &PaymentHandler{bookingService: bookingService}
}

// RegisterRoutes registers payment callback routes on the given group
func (h *PaymentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	payments := rg.Group("/payments")
	{
		payments.POST("/settled", h.Settled)
		payments.POST("/refunded", h.Refunded)
	}
}

// PaymentCallbackRequest is the gateway notification payload
type PaymentCallbackRequest struct {
	BookingID string `json:"booking_id" binding:"required,uuid"`
	Reference string `json:"reference" binding:"max=100"`
}

// Settled records that a booking's payment has landed
func (h *PaymentHandler) Settled(c *gin.Context) {
	var req PaymentCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		h.BadRequest(c, "Invalid booking ID format")
		return
	}

	resp, err := h.bookingService.OnPaymentSettled(c.Request.Context(), bookingID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// Refunded records that a cancelled booking's payment has been refunded
func (h *PaymentHandler) Refunded(c *gin.Context) {
	var req PaymentCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	bookingID, err := uuid.Parse(req.BookingID)
	if err != nil {
		h.BadRequest(c, "Invalid booking ID format")
		return
	}

	resp, err := h.bookingService.OnRefundIssued(c.Request.Context(), bookingID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}
