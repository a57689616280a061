//go:build unit

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"foodshare/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCORSConfig_AddsListingHeaders(t *testing.T) {
	cfg := config.CORSConfig{
		AllowOrigins:  []string{"http://localhost:3000"},
		AllowMethods:  []string{"GET"},
		AllowHeaders:  []string{"content-type"},
		ExposeHeaders: nil,
		MaxAge:        time.Hour,
	}

	actual := corsConfig(cfg)

	assert.Equal(t, []string{"GET", "POST", "PATCH"}, actual.AllowMethods)
	assert.Equal(t, []string{"content-type", "Authorization", "Idempotency-Key"}, actual.AllowHeaders)
	assert.Equal(t, []string{"Idempotent-Replayed", "X-Request-ID"}, actual.ExposeHeaders)
	assert.Equal(t, []string{"GET"}, cfg.AllowMethods, "configured slice must not be modified")
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(NewCORSMiddleware(config.CORSConfig{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowCredentials: true,
	}))
	r.POST("/api/listings", func(c *gin.Context) { c.Status(http.StatusCreated) })

	req := httptest.NewRequest(http.MethodOptions, "/api/listings", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Idempotency-Key")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Idempotency-Key")
}
