package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/WaslIoT/wasl_api/internal/i18n"
	"github.com/WaslIoT/wasl_api/internal/service"
	"github.com/WaslIoT/wasl_api/internal/utils"
)

type AuthHandler struct {
	authService *service.AdminAuthService
}

func NewAuthHandler(authService *service.AdminAuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login handles POST /v1/admin/auth/login. Failures map to the small set of
// localized messages the console shows inline; there is no lockout or
// backoff policy on this route.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
		Locale   string `json:"locale"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}
	locale := i18n.ParseLocale(req.Locale)

	token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidEmail):
			utils.Error(c, 400, "INVALID_EMAIL", i18n.T(locale, i18n.MsgInvalidEmail))
		case errors.Is(err, utils.ErrBadCredentials):
			utils.Error(c, 401, "INVALID_CREDENTIALS", i18n.T(locale, i18n.MsgInvalidCredentials))
		case errors.Is(err, utils.ErrAccountInactive):
			utils.Error(c, 401, "ACCOUNT_INACTIVE", i18n.T(locale, i18n.MsgAccountInactive))
		default:
			utils.Error(c, 500, "LOGIN_FAILED", i18n.T(locale, i18n.MsgLoginFailed))
		}
		return
	}

	utils.Success(c, 200, "Login successful", gin.H{
		"token": token,
	})
}
