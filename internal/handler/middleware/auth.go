package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"baby-registry/internal/handler/httperr"
	"baby-registry/internal/pkg/cookie"
	"baby-registry/internal/pkg/errs"
	"baby-registry/internal/usecase"

	"github.com/gin-gonic/gin"
)

const ctxAdminKey = "is_admin"

var errUnauthorized = errs.New("unauthorized")

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireAdmin accepts the session cookie or a Bearer token.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := cookie.AdminSession(c)
		if token == "" {
			authHeader := c.GetHeader("Authorization")
			if strings.HasPrefix(authHeader, "Bearer ") {
				token = strings.TrimSpace(authHeader[len("Bearer "):])
			}
		}

		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthorized, "Admin token required", nil)
			return
		}

		if err := m.tokenValidator.ValidateAdminToken(token); err != nil {
			slog.Warn("admin token rejected", "error", err.Error(), "path", c.Request.URL.Path)
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxAdminKey, true)
		c.Next()
	}
}

func IsAdmin(c *gin.Context) bool {
	return c.GetBool(ctxAdminKey)
}
