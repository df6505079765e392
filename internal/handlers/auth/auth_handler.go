// internal/handlers/auth/auth_handler.go
package auth

import (
	"errors"
	"net/http"

	"rainerio-service/internal/domain/seller"
	"rainerio-service/internal/middleware"
	xerrors "rainerio-service/internal/pkg/errors"
	"rainerio-service/internal/pkg/response"
	service "rainerio-service/internal/service/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService *service.AuthService
	logger      *zap.Logger
}

func NewAuthHandler(authService *service.AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, logger: logger}
}

// Login authenticates a seller by username or email plus password.
func (h *AuthHandler) Login(c *gin.Context) {
	var creds seller.Credentials
	if err := c.ShouldBindJSON(&creds); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request", err)
		return
	}

	result, err := h.authService.Login(c.Request.Context(), creds.Identifier, creds.Password)
	if err != nil {
		if errors.Is(err, xerrors.ErrInvalidCredentials) {
			// Same message for wrong password and inactive seller.
			response.Error(c, http.StatusUnauthorized, "invalid credentials", nil)
			return
		}
		h.logger.Error("login failed", zap.Error(err))
		response.Error(c, http.StatusBadGateway, "failed to reach the seller store", err)
		return
	}

	response.Success(c, http.StatusOK, "login successful", result)
}

// Logout tears down the authenticated seller's session.
func (h *AuthHandler) Logout(c *gin.Context) {
	sellerID := middleware.MustGetSellerID(c)

	if err := h.authService.Logout(c.Request.Context(), sellerID); err != nil {
		response.Error(c, http.StatusInternalServerError, "failed to end session", err)
		return
	}

	response.Success(c, http.StatusOK, "logged out", nil)
}
