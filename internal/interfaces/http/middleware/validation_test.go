package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tourbook/backend/internal/interfaces/http/dto"
)

type createListingRequest struct {
	Name      string `json:"name" binding:"required,max=200"`
	MaxGuests int    `json:"max_guests" binding:"required,gte=1"`
	PlanType  string `json:"plan_type" binding:"omitempty,oneof=basic premium"`
}

func newValidationTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	SetupValidator()

	r := gin.New()
	r.POST("/listings", func(c *gin.Context) {
		var req createListingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.Status(http.StatusCreated)
	})
	return r
}

func TestHandleValidationError(t *testing.T) {
	r := newValidationTestRouter()

	t.Run("reports missing fields with json names", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/listings", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)

		fields := make([]string, 0, len(resp.Error.Details))
		for _, d := range resp.Error.Details {
			fields = append(fields, d.Field)
		}
		assert.Contains(t, fields, "name")
		assert.Contains(t, fields, "max_guests")
	})

	t.Run("reports oneof violations", func(t *testing.T) {
		w := httptest.NewRecorder()
		body := `{"name":"City walk","max_guests":4,"plan_type":"platinum"}`
		req := httptest.NewRequest(http.MethodPost, "/listings", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.Response
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotNil(t, resp.Error)
		require.Len(t, resp.Error.Details, 1)
		assert.Equal(t, "plan_type", resp.Error.Details[0].Field)
		assert.Contains(t, resp.Error.Details[0].Message, "Must be one of")
	})

	t.Run("valid request passes", func(t *testing.T) {
		w := httptest.NewRecorder()
		body := `{"name":"City walk","max_guests":4,"plan_type":"basic"}`
		req := httptest.NewRequest(http.MethodPost, "/listings", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})
}
