package cookie

import (
	"net/http"
	"time"

	"baby-registry/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const AdminSessionCookieName = "admin_session"

func SetAdminSession(c *gin.Context, cfg config.CookieConfig, token string, ttl time.Duration) {
	c.SetSameSite(sameSite(cfg.SameSite))
	c.SetCookie(AdminSessionCookieName, token, int(ttl.Seconds()), "/", cfg.Domain, cfg.Secure, true)
}

func ClearAdminSession(c *gin.Context, cfg config.CookieConfig) {
	c.SetSameSite(sameSite(cfg.SameSite))
	c.SetCookie(AdminSessionCookieName, "", -1, "/", cfg.Domain, cfg.Secure, true)
}

func AdminSession(c *gin.Context) string {
	token, _ := c.Cookie(AdminSessionCookieName)
	return token
}

func sameSite(mode string) http.SameSite {
	switch mode {
	case "Strict":
		return http.SameSiteStrictMode
	case "None":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
