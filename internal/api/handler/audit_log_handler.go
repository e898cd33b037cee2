package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Yasheenyash33/training-tracker-Dash/internal/service"
	"github.com/Yasheenyash33/training-tracker-Dash/pkg/response"
)

// AuditLogHandler read-only access to the audit trail.
type AuditLogHandler struct {
	auditSvc service.AuditLogService
}

// NewAuditLogHandler creates an AuditLogHandler.
func NewAuditLogHandler(auditSvc service.AuditLogService) *AuditLogHandler {
	return &AuditLogHandler{auditSvc: auditSvc}
}

// List audit entries, newest first unless ordered otherwise.
// GET /api/audit-logs
func (h *AuditLogHandler) List(c *gin.Context) {
	q, ok := bindList(c)
	if !ok {
		return
	}

	page, err := h.auditSvc.List(c.Request.Context(), q)
	if err != nil {
		h.handleAuditLogError(c, err)
		return
	}

	renderPage(c, page)
}

// Get one audit entry.
// GET /api/audit-logs/:id
func (h *AuditLogHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	entry, err := h.auditSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.handleAuditLogError(c, err)
		return
	}

	response.OK(c, entry)
}

func (h *AuditLogHandler) handleAuditLogError(c *gin.Context, err error) {
	if renderFieldError(c, err, 26001) {
		return
	}
	switch {
	case errors.Is(err, service.ErrAuditLogNotFound):
		response.NotFound(c, 26002, "audit log not found")
	default:
		response.InternalError(c)
	}
}
