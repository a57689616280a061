//go:build unit

package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"foodshare/internal/pkg/config"
	"foodshare/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func byName(cookies []*http.Cookie) map[string]*http.Cookie {
	out := make(map[string]*http.Cookie, len(cookies))
	for _, c := range cookies {
		out[c.Name] = c
	}
	return out
}

func TestSetTokenCookies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	cfg := config.CookieConfig{Domain: "foodshare.test", Secure: true, SameSite: "Strict"}

	cookie.SetTokenCookies(c, cfg, "access", "refresh", 15*time.Minute, 7*24*time.Hour)

	got := byName(rec.Result().Cookies())
	require.Len(t, got, 2)

	access := got[cookie.AccessTokenCookieName]
	require.NotNil(t, access)
	assert.Equal(t, "access", access.Value)
	assert.Equal(t, cookie.AccessTokenPath, access.Path)
	assert.Equal(t, 900, access.MaxAge)
	assert.True(t, access.HttpOnly)
	assert.True(t, access.Secure)
	assert.Equal(t, http.SameSiteStrictMode, access.SameSite)

	refresh := got[cookie.RefreshTokenCookieName]
	require.NotNil(t, refresh)
	assert.Equal(t, "refresh", refresh.Value)
	assert.Equal(t, cookie.RefreshTokenPath, refresh.Path)
	assert.Equal(t, 7*24*3600, refresh.MaxAge)
}

func TestClearTokenCookies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	cookie.ClearTokenCookies(c, config.CookieConfig{SameSite: "Lax"})

	got := byName(rec.Result().Cookies())
	for name, path := range map[string]string{
		cookie.AccessTokenCookieName:  cookie.AccessTokenPath,
		cookie.RefreshTokenCookieName: cookie.RefreshTokenPath,
	} {
		cleared := got[name]
		require.NotNil(t, cleared, name)
		assert.Empty(t, cleared.Value)
		assert.Equal(t, path, cleared.Path, "%s must be cleared on the path it was issued for", name)
		assert.Negative(t, cleared.MaxAge)
	}
}

func TestGetTokens(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
	c.Request.AddCookie(&http.Cookie{Name: cookie.RefreshTokenCookieName, Value: "r"})

	assert.Equal(t, "r", cookie.GetRefreshToken(c))
	assert.Empty(t, cookie.GetAccessToken(c))
}
