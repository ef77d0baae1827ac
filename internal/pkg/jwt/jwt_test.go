//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"baby-registry/internal/pkg/clock"
	"baby-registry/internal/pkg/jwt"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_IssueAndValidate(t *testing.T) {
	clk := clock.NewFixedClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	svc := jwt.NewService("secret", time.Hour, clk)

	token, expiresAt, err := svc.IssueAdminToken()
	require.NoError(t, err)
	assert.Equal(t, clk.Now().Add(time.Hour), expiresAt)

	claims, err := svc.ValidateAdminToken(token)
	require.NoError(t, err)
	assert.Equal(t, jwt.RoleAdmin, claims.Role)

	clk.Advance(2 * time.Hour)
	_, err = svc.ValidateAdminToken(token)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestService_RejectsForeignTokens(t *testing.T) {
	clk := clock.NewFixedClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	svc := jwt.NewService("secret", time.Hour, clk)

	other := jwt.NewService("other-secret", time.Hour, clk)
	forged, _, err := other.IssueAdminToken()
	require.NoError(t, err)

	viewer := gojwt.NewWithClaims(gojwt.SigningMethodHS256, jwt.Claims{
		Role: "viewer",
		RegisteredClaims: gojwt.RegisteredClaims{
			ExpiresAt: gojwt.NewNumericDate(clk.Now().Add(time.Hour)),
		},
	})
	viewerToken, err := viewer.SignedString([]byte("secret"))
	require.NoError(t, err)

	testCases := []struct {
		name  string
		token string
		errIs error
	}{
		{"garbage", "not.a.token", jwt.ErrInvalidToken},
		{"wrong secret", forged, jwt.ErrInvalidToken},
		{"not admin", viewerToken, jwt.ErrNotAdmin},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.ValidateAdminToken(tc.token)
			assert.ErrorIs(t, err, tc.errIs)
		})
	}
}
