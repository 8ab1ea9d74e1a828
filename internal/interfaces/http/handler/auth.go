package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tourbook/backend/internal/infrastructure/auth"
)

// AuthHandler issues development tokens. Identity is an external
// collaborator in production; this endpoint exists only for local and test
// environments and is disabled when the handler is built with allowIssue
// false.
type AuthHandler struct {
	BaseHandler
	jwtService *auth.JWTService
	allowIssue bool
}

// NewAuthHandler creates a new AuthHandler. allowIssue should be false in
// production.
func NewAuthHandler(jwtService *auth.JWTService, allowIssue bool) *AuthHandler {
	return &AuthHandler{
		jwtService: jwtService,
		allowIssue: allowIssue,
	}
}

// RegisterRoutes registers auth routes on the given group
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/token", h.IssueToken)
}

// IssueTokenRequest is the development token mint request
type IssueTokenRequest struct {
	UserID string `json:"user_id" binding:"required,uuid"`
	Role   string `json:"role" binding:"required,oneof=customer vendor admin"`
}

// IssueToken mints a development token for the given user and role
func (h *AuthHandler) IssueToken(c *gin.Context) {
	if !h.allowIssue {
		h.NotFound(c, "Not available in this environment")
		return
	}

	var req IssueTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		h.BadRequest(c, "Invalid user ID format")
		return
	}

	token, err := h.jwtService.GenerateToken(userID, auth.Role(req.Role))
	if err != nil {
		h.InternalError(c, "Failed to issue token")
		return
	}

	h.Success(c, token)
}
