package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourbook/backend/internal/infrastructure/auth"
	"github.com/tourbook/backend/internal/infrastructure/config"
)

func newTestJWTService(t *testing.T) *auth.JWTService {
	t.Helper()
	return auth.NewJWTService(config.JWTConfig{
		Secret:                "test-secret-for-middleware-tests!!",
		AccessTokenExpiration: time.Hour,
		Issuer:                "test",
	})
}

func setupRouter(jwtService *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(JWTAuthMiddleware(jwtService))
	r.GET("/api/v1/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": GetJWTUserID(c),
			"role":    GetJWTRole(c),
		})
	})
	r.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func TestJWTAuthMiddleware(t *testing.T) {
	jwtService := newTestJWTService(t)
	r := setupRouter(jwtService)

	t.Run("valid token passes and sets claims", func(t *testing.T) {
		userID := uuid.New()
		token, err := jwtService.GenerateToken(userID, auth.RoleVendor)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/protected", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+token.AccessToken)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), userID.String())
		assert.Contains(t, w.Body.String(), "vendor")
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/protected", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_UNAUTHORIZED")
	})

	t.Run("malformed header is rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/protected", nil)
		req.Header.Set(AuthHeaderKey, "Token abc")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/protected", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+"not.a.token")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_TOKEN_INVALID")
	})

	t.Run("skip paths bypass auth", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestRequireRole(t *testing.T) {
	jwtService := newTestJWTService(t)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(JWTAuthMiddleware(jwtService))
	r.GET("/api/v1/admin-only", RequireRole(auth.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("matching role passes", func(t *testing.T) {
		token, err := jwtService.GenerateToken(uuid.New(), auth.RoleAdmin)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin-only", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+token.AccessToken)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("wrong role is forbidden", func(t *testing.T) {
		token, err := jwtService.GenerateToken(uuid.New(), auth.RoleCustomer)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/admin-only", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+token.AccessToken)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "ERR_FORBIDDEN")
	})
}
