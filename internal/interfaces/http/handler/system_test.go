package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubPinger struct {
	err error
}

func (s *stubPinger) Ping(_ context.Context) error {
	return s.err
}

func TestSystemHandlerPing(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewSystemHandler(nil)
	h.RegisterRoutes(r.Group("/api/v1"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/system/ping", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "pong")
}

func TestSystemHandlerInfo(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewSystemHandler(nil)
	h.RegisterRoutes(r.Group("/api/v1"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/system/info", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_version")
}

func TestSystemHandlerHealth(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("healthy database", func(t *testing.T) {
		h := NewSystemHandler(&stubPinger{})
		r := gin.New()
		r.GET("/health", h.Health)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"database":"ok"`)
	})

	t.Run("unreachable database degrades health", func(t *testing.T) {
		h := NewSystemHandler(&stubPinger{err: errors.New("connection refused")})
		r := gin.New()
		r.GET("/health", h.Health)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "degraded")
	})

	t.Run("no database configured", func(t *testing.T) {
		h := NewSystemHandler(nil)
		r := gin.New()
		r.GET("/health", h.Health)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}
