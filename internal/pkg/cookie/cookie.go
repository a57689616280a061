package cookie

import (
	"net/http"
	"time"

	"foodshare/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const (
	AccessTokenCookieName  = "fs_access"
	RefreshTokenCookieName = "fs_refresh"

	// The refresh token is only ever sent to the auth endpoints.
	AccessTokenPath  = "/api"
	RefreshTokenPath = "/api/auth"
)

type tokenCookie struct {
	name  string
	path  string
	value string
	ttl   time.Duration
}

func SetTokenCookies(c *gin.Context, cfg config.CookieConfig, accessToken, refreshToken string, accessExpiry, refreshExpiry time.Duration) {
	write(c, cfg, []tokenCookie{
		{name: AccessTokenCookieName, path: AccessTokenPath, value: accessToken, ttl: accessExpiry},
		{name: RefreshTokenCookieName, path: RefreshTokenPath, value: refreshToken, ttl: refreshExpiry},
	})
}

// ClearTokenCookies expires both cookies on the paths they were issued for.
func ClearTokenCookies(c *gin.Context, cfg config.CookieConfig) {
	write(c, cfg, []tokenCookie{
		{name: AccessTokenCookieName, path: AccessTokenPath, ttl: -time.Second},
		{name: RefreshTokenCookieName, path: RefreshTokenPath, ttl: -time.Second},
	})
}

func write(c *gin.Context, cfg config.CookieConfig, cookies []tokenCookie) {
	c.SetSameSite(sameSiteMode(cfg.SameSite))
	for _, tc := range cookies {
		maxAge := int(tc.ttl.Seconds())
		if tc.ttl < 0 {
			maxAge = -1
		}
		c.SetCookie(tc.name, tc.value, maxAge, tc.path, cfg.Domain, cfg.Secure, true)
	}
}

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}

func GetRefreshToken(c *gin.Context) string {
	token, _ := c.Cookie(RefreshTokenCookieName)
	return token
}

func sameSiteMode(sameSite string) http.SameSite {
	switch sameSite {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
