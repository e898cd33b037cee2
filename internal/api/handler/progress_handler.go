package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Yasheenyash33/training-tracker-Dash/internal/dto"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/service"
	"github.com/Yasheenyash33/training-tracker-Dash/pkg/response"
)

// ProgressHandler progress records. Non-staff callers only reach records
// about themselves.
type ProgressHandler struct {
	progressSvc service.ProgressService
}

// NewProgressHandler creates a ProgressHandler.
func NewProgressHandler(progressSvc service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressSvc: progressSvc}
}

// List lists the progress records visible to the caller.
// GET /api/progress-records
func (h *ProgressHandler) List(c *gin.Context) {
	caller, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	q, ok := bindList(c)
	if !ok {
		return
	}

	page, err := h.progressSvc.List(c.Request.Context(), q, caller)
	if err != nil {
		h.handleProgressError(c, err)
		return
	}

	renderPage(c, page)
}

// Get returns one progress record.
// GET /api/progress-records/:id
func (h *ProgressHandler) Get(c *gin.Context) {
	caller, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	record, err := h.progressSvc.Get(c.Request.Context(), id, caller)
	if err != nil {
		h.handleProgressError(c, err)
		return
	}

	response.OK(c, record)
}

// Create records progress.
// POST /api/progress-records
func (h *ProgressHandler) Create(c *gin.Context) {
	caller, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	var req dto.CreateProgressRequest
	if !bindJSON(c, &req) {
		return
	}

	record, err := h.progressSvc.Create(c.Request.Context(), &req, caller)
	if err != nil {
		h.handleProgressError(c, err)
		return
	}

	response.Created(c, record)
}

// Update applies the supplied fields to a progress record.
// PUT|PATCH /api/progress-records/:id
func (h *ProgressHandler) Update(c *gin.Context) {
	caller, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateProgressRequest
	if !bindJSON(c, &req) {
		return
	}

	record, err := h.progressSvc.Update(c.Request.Context(), id, &req, caller)
	if err != nil {
		h.handleProgressError(c, err)
		return
	}

	response.OK(c, record)
}

// Delete removes a progress record.
// DELETE /api/progress-records/:id
func (h *ProgressHandler) Delete(c *gin.Context) {
	caller, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.progressSvc.Delete(c.Request.Context(), id, caller); err != nil {
		h.handleProgressError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *ProgressHandler) handleProgressError(c *gin.Context, err error) {
	if renderFieldError(c, err, 24001) {
		return
	}
	switch {
	case errors.Is(err, service.ErrProgressNotFound):
		response.NotFound(c, 24002, "progress record not found")
	default:
		response.InternalError(c)
	}
}
