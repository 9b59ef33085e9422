package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/AlexandreJustinRepia/dtr-denr/internal/dto"
	"github.com/AlexandreJustinRepia/dtr-denr/internal/service"
	"github.com/AlexandreJustinRepia/dtr-denr/pkg/jwt"
	"github.com/AlexandreJustinRepia/dtr-denr/pkg/response"
)

// AuthHandler exposes admin session endpoints.
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login authenticates the admin account.
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "invalid request payload")
		return
	}

	tokens, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Unauthorized(c, 11001, "invalid username or password")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, tokens)
}

// Logout revokes the current access token.
// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	v, exists := c.Get("claims")
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return
	}
	claims, ok := v.(*jwt.Claims)
	if !ok {
		response.Unauthorized(c, 10002, "not authenticated")
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), claims); err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}
