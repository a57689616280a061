//go:build unit

package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodshare/internal/handler/httperr"
	"foodshare/internal/pkg/errs"
	"foodshare/internal/pkg/metrics"

	"github.com/gin-gonic/gin"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body httperr.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())
	return body.Error.Message
}

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		handler    gin.HandlerFunc
		wantStatus int
		wantMsg    string
	}{
		{
			name: "private taxonomy error is classified",
			handler: func(c *gin.Context) {
				_ = c.Error(errs.Wrap(errs.Mark(errs.New("listing expired"), errs.ErrExpired), "claim"))
			},
			wantStatus: http.StatusGone,
			wantMsg:    "listing expired",
		},
		{
			name: "unknown private error hides details",
			handler: func(c *gin.Context) {
				_ = c.Error(errs.New("pq: relation does not exist"))
			},
			wantStatus: http.StatusInternalServerError,
			wantMsg:    "Internal server error",
		},
		{
			name: "public error response is replayed",
			handler: func(c *gin.Context) {
				resp := httperr.Response{Status: http.StatusConflict}
				resp.Error.Message = "listing already claimed"
				_ = c.Error(errs.ErrAlreadyClaimed).SetType(gin.ErrorTypePublic).SetMeta(resp)
			},
			wantStatus: http.StatusConflict,
			wantMsg:    "listing already claimed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(ErrorHandler())
			r.POST("/api/listings/:id/claim", tt.handler)

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/listings/x/claim", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, errorMessage(t, rec))
		})
	}

	t.Run("written responses are left alone", func(t *testing.T) {
		r := gin.New()
		r.Use(ErrorHandler())
		r.GET("/health", func(c *gin.Context) {
			_ = c.Error(errs.New("logged only"))
			c.Status(http.StatusOK)
			c.Writer.WriteHeaderNow()
		})

		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Body.String())
	})
}

func panicCount(t *testing.T, route string) float64 {
	t.Helper()
	var m dto.Metric
	require.NoError(t, metrics.PanicsRecoveredTotal.WithLabelValues(route).Write(&m))
	return m.GetCounter().GetValue()
}

func TestCustomRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CustomRecovery())
	r.GET("/api/me/stats", func(*gin.Context) { panic("boom") })
	before := panicCount(t, "/api/me/stats")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/me/stats", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Internal server error", errorMessage(t, rec))
	assert.Equal(t, before+1, panicCount(t, "/api/me/stats"))
}
