package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Yasheenyash33/training-tracker-Dash/internal/dto"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/service"
	"github.com/Yasheenyash33/training-tracker-Dash/pkg/response"
)

// ClassHandler online classes.
type ClassHandler struct {
	classSvc service.ClassService
}

// NewClassHandler creates a ClassHandler.
func NewClassHandler(classSvc service.ClassService) *ClassHandler {
	return &ClassHandler{classSvc: classSvc}
}

// List lists classes.
// GET /api/classes
func (h *ClassHandler) List(c *gin.Context) {
	q, ok := bindList(c)
	if !ok {
		return
	}

	page, err := h.classSvc.List(c.Request.Context(), q)
	if err != nil {
		h.handleClassError(c, err)
		return
	}

	renderPage(c, page)
}

// Get returns one class.
// GET /api/classes/:id
func (h *ClassHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	class, err := h.classSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.handleClassError(c, err)
		return
	}

	response.OK(c, class)
}

// Create creates a class.
// POST /api/classes
func (h *ClassHandler) Create(c *gin.Context) {
	caller, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	var req dto.CreateClassRequest
	if !bindJSON(c, &req) {
		return
	}

	class, err := h.classSvc.Create(c.Request.Context(), &req, caller)
	if err != nil {
		h.handleClassError(c, err)
		return
	}

	response.Created(c, class)
}

// Update applies the supplied fields to a class.
// PUT|PATCH /api/classes/:id
func (h *ClassHandler) Update(c *gin.Context) {
	caller, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateClassRequest
	if !bindJSON(c, &req) {
		return
	}

	class, err := h.classSvc.Update(c.Request.Context(), id, &req, caller)
	if err != nil {
		h.handleClassError(c, err)
		return
	}

	response.OK(c, class)
}

// Delete removes a class.
// DELETE /api/classes/:id
func (h *ClassHandler) Delete(c *gin.Context) {
	caller, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.classSvc.Delete(c.Request.Context(), id, caller); err != nil {
		h.handleClassError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *ClassHandler) handleClassError(c *gin.Context, err error) {
	if renderFieldError(c, err, 25001) {
		return
	}
	switch {
	case errors.Is(err, service.ErrClassNotFound):
		response.NotFound(c, 25002, "class not found")
	default:
		response.InternalError(c)
	}
}
