package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yasheenyash33/training-tracker-Dash/internal/dto"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/service"
	"github.com/Yasheenyash33/training-tracker-Dash/pkg/response"
)

// AuthHandler registration, tokens and the current user.
type AuthHandler struct {
	authSvc service.AuthService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Register self-registration.
// POST /api/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authSvc.Register(c.Request.Context(), &req, clientActor(c))
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.Created(c, result)
}

// Login issues an access/refresh pair.
// POST /api/token
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, result)
}

// Refresh rotates a refresh token.
// POST /api/token/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.authSvc.Refresh(c.Request.Context(), &req)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, result)
}

// Logout revokes the presented tokens.
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	var req dto.LogoutRequest
	// the body is optional
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}

	claims := claimsFrom(c)
	if claims == nil {
		response.Unauthorized(c, 10002, "authentication credentials were not provided")
		return
	}

	if err := h.authSvc.Logout(c.Request.Context(), claims, req.Refresh); err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, dto.MessageResponse{Message: "Logged out."})
}

// CurrentUser the caller's profile.
// GET /api/auth/user
func (h *AuthHandler) CurrentUser(c *gin.Context) {
	caller, ok := MustGetPrincipal(c)
	if !ok {
		return
	}

	result, err := h.authSvc.CurrentUser(c.Request.Context(), caller)
	if err != nil {
		h.handleAuthError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *AuthHandler) handleAuthError(c *gin.Context, err error) {
	if renderFieldError(c, err, 11001) {
		return
	}
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, 11002, err.Error())
	case errors.Is(err, service.ErrTokenInvalid):
		response.Error(c, http.StatusUnauthorized, 11003, err.Error())
	case errors.Is(err, service.ErrUserNotFound):
		response.Error(c, http.StatusUnauthorized, 11004, "user not found")
	default:
		response.InternalError(c)
	}
}
