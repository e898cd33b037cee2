package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/Yasheenyash33/training-tracker-Dash/internal/dto"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/service"
	"github.com/Yasheenyash33/training-tracker-Dash/pkg/response"
)

// PasswordResetHandler the two-step password reset flow.
type PasswordResetHandler struct {
	resetSvc service.PasswordResetService
}

// NewPasswordResetHandler creates a PasswordResetHandler.
func NewPasswordResetHandler(resetSvc service.PasswordResetService) *PasswordResetHandler {
	return &PasswordResetHandler{resetSvc: resetSvc}
}

// Request mails a reset link.
// POST /api/password-reset
func (h *PasswordResetHandler) Request(c *gin.Context) {
	var req dto.PasswordResetRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.resetSvc.Request(c.Request.Context(), &req, clientActor(c)); err != nil {
		h.handleResetError(c, err)
		return
	}

	response.OK(c, dto.MessageResponse{Message: "Password reset email has been sent."})
}

// Confirm redeems a reset token.
// POST /api/password-reset/confirm
func (h *PasswordResetHandler) Confirm(c *gin.Context) {
	var req dto.PasswordResetConfirmRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := h.resetSvc.Confirm(c.Request.Context(), &req, clientActor(c)); err != nil {
		h.handleResetError(c, err)
		return
	}

	response.OK(c, dto.MessageResponse{Message: "Password has been reset successfully."})
}

func (h *PasswordResetHandler) handleResetError(c *gin.Context, err error) {
	if renderFieldError(c, err, 12001) {
		return
	}
	response.InternalError(c)
}
