package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	vendorapp "github.com/tourbook/backend/internal/application/vendor"
	"github.com/tourbook/backend/internal/infrastructure/auth"
	"github.com/tourbook/backend/internal/interfaces/http/middleware"
)

// VendorHandler handles vendor onboarding, subscriptions, and quota queries
type VendorHandler struct {
	BaseHandler
	vendorService *vendorapp.VendorService
	quotaService  *vendorapp.QuotaService
}

// NewVendorHandler creates a new VendorHandler
func NewVendorHandler(vendorService *vendorapp.VendorService, quotaService *vendorapp.QuotaService) *VendorHandler {
	return &VendorHandler{
		vendorService: vendorService,
		quotaService:  quotaService,
	}
}

// RegisterRoutes registers vendor routes on the given group
func (h *VendorHandler) RegisterRoutes(rg *gin.RouterGroup) {
	vendors := rg.Group("/vendors")
	{
		vendors.POST("", h.Register)
		vendors.GET("", middleware.RequireRole(auth.RoleAdmin), h.List)
		vendors.GET("/:id", h.GetByID)
		vendors.POST("/:id/subscription", middleware.RequireRole(auth.RoleVendor, auth.RoleAdmin), h.PurchasePlan)
		vendors.GET("/:id/subscription", h.GetSubscription)
		vendors.GET("/:id/capacity", h.CheckCapacity)
	}
}

// Register onboards a new vendor
func (h *VendorHandler) Register(c *gin.Context) {
	var req vendorapp.RegisterVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	resp, err := h.vendorService.Register(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// GetByID retrieves a vendor by ID
func (h *VendorHandler) GetByID(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid vendor ID format")
		return
	}

	resp, err := h.vendorService.GetByID(c.Request.Context(), vendorID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// List retrieves a paginated list of vendors
func (h *VendorHandler) List(c *gin.Context) {
	filter, err := bindListFilter(c)
	if err != nil {
		h.HandleBindingError(c, err)
		return
	}

	vendors, total, err := h.vendorService.List(c.Request.Context(), filter)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.SuccessWithMeta(c, vendors, total, filter.Page, filter.PageSize)
}

// PurchasePlan purchases a subscription plan for a vendor
func (h *VendorHandler) PurchasePlan(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid vendor ID format")
		return
	}

	var req vendorapp.PurchasePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	resp, err := h.vendorService.PurchasePlan(c.Request.Context(), vendorID, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, resp)
}

// GetSubscription retrieves the vendor's active subscription
func (h *VendorHandler) GetSubscription(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid vendor ID format")
		return
	}

	resp, err := h.vendorService.GetSubscription(c.Request.Context(), vendorID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}

// CheckCapacity reports the vendor's remaining tour quota without consuming it
func (h *VendorHandler) CheckCapacity(c *gin.Context) {
	vendorID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid vendor ID format")
		return
	}

	resp, err := h.quotaService.CheckCapacity(c.Request.Context(), vendorID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, resp)
}
