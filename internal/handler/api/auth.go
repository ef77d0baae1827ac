package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "baby-registry/internal/handler/dto/request"
	resdto "baby-registry/internal/handler/dto/response"
	"baby-registry/internal/handler/httperr"
	"baby-registry/internal/pkg/config"
	"baby-registry/internal/pkg/cookie"
	"baby-registry/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	cookieCfg   config.CookieConfig
}

func NewAuthHandler(authUseCase usecase.AuthUseCase, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		cookieCfg:   cfg.Cookie,
	}
}

// @Summary Admin login
// @Description Exchange the admin password for a session token (also set as an HttpOnly cookie)
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.AdminLoginRequest true "Login request"
// @Success 200 {object} resdto.AdminLoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /admin/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}
	if err := req.Validate(); err != nil {
		abortWithBindError(c, err)
		return
	}

	session, err := h.authUseCase.Login(c.Request.Context(), req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid password", nil)
			return
		}
		httperr.AbortInternal(c, err)
		return
	}

	cookie.SetAdminSession(c, h.cookieCfg, session.Token, time.Until(session.ExpiresAt))
	c.JSON(http.StatusOK, resdto.AdminLoginResponse{
		AccessToken: session.Token,
		ExpiresAt:   session.ExpiresAt,
	})
}

// @Summary Admin logout
// @Description Clears the session cookie. Bearer tokens simply expire.
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /admin/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAdminSession(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}
