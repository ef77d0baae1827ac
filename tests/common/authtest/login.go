//go:build unit || e2e

package authtest

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"baby-registry/internal/handler/dto/request"
	resdto "baby-registry/internal/handler/dto/response"
	"baby-registry/internal/pkg/clock"
	"baby-registry/internal/pkg/config"
	"baby-registry/internal/pkg/cookie"
	"baby-registry/internal/pkg/jwt"
	"baby-registry/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// LoginAdmin logs in through the API and returns the bearer token.
func LoginAdmin(t *testing.T, router *gin.Engine, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/admin/login",
		request.AdminLoginRequest{Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	sessionCookie := httptest.ExtractCookie(w, cookie.AdminSessionCookieName)
	require.NotNil(t, sessionCookie, "admin session cookie not set")

	var res resdto.AdminLoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.Equal(t, sessionCookie.Value, res.AccessToken)

	return res.AccessToken
}

// ExpiredToken signs an admin token that expired an hour ago.
func ExpiredToken(t *testing.T, cfg config.JWTConfig) string {
	t.Helper()

	past := clock.NewFixedClock(time.Now().Add(-2 * time.Hour))
	token, _, err := jwt.NewService(cfg.Secret, time.Hour, past).IssueAdminToken()
	require.NoError(t, err)
	return token
}
