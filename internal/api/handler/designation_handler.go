package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Yasheenyash33/training-tracker-Dash/internal/dto"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/service"
	"github.com/Yasheenyash33/training-tracker-Dash/pkg/response"
)

// DesignationHandler designations, their programs and trainee assignments.
type DesignationHandler struct {
	designationSvc service.DesignationService
}

// NewDesignationHandler creates a DesignationHandler.
func NewDesignationHandler(designationSvc service.DesignationService) *DesignationHandler {
	return &DesignationHandler{designationSvc: designationSvc}
}

// List lists designations.
// GET /api/designations
func (h *DesignationHandler) List(c *gin.Context) {
	q, ok := bindList(c)
	if !ok {
		return
	}

	page, err := h.designationSvc.List(c.Request.Context(), q)
	if err != nil {
		h.handleDesignationError(c, err)
		return
	}

	renderPage(c, page)
}

// Get returns one designation.
// GET /api/designations/:id
func (h *DesignationHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	designation, err := h.designationSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.handleDesignationError(c, err)
		return
	}

	response.OK(c, designation)
}

// Create creates a designation.
// POST /api/designations
func (h *DesignationHandler) Create(c *gin.Context) {
	caller, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	var req dto.CreateDesignationRequest
	if !bindJSON(c, &req) {
		return
	}

	designation, err := h.designationSvc.Create(c.Request.Context(), &req, caller)
	if err != nil {
		h.handleDesignationError(c, err)
		return
	}

	response.Created(c, designation)
}

// Update applies the supplied fields to a designation.
// PUT|PATCH /api/designations/:id
func (h *DesignationHandler) Update(c *gin.Context) {
	caller, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateDesignationRequest
	if !bindJSON(c, &req) {
		return
	}

	designation, err := h.designationSvc.Update(c.Request.Context(), id, &req, caller)
	if err != nil {
		h.handleDesignationError(c, err)
		return
	}

	response.OK(c, designation)
}

// Delete removes a designation.
// DELETE /api/designations/:id
func (h *DesignationHandler) Delete(c *gin.Context) {
	caller, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.designationSvc.Delete(c.Request.Context(), id, caller); err != nil {
		h.handleDesignationError(c, err)
		return
	}

	response.NoContent(c)
}

// ── designation programs ──

// ListPrograms lists designation programs.
// GET /api/designation-programs
func (h *DesignationHandler) ListPrograms(c *gin.Context) {
	q, ok := bindList(c)
	if !ok {
		return
	}

	page, err := h.designationSvc.ListPrograms(c.Request.Context(), q)
	if err != nil {
		h.handleDesignationError(c, err)
		return
	}

	renderPage(c, page)
}

// GetProgram returns one designation program.
// GET /api/designation-programs/:id
func (h *DesignationHandler) GetProgram(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	link, err := h.designationSvc.GetProgram(c.Request.Context(), id)
	if err != nil {
		h.handleDesignationError(c, err)
		return
	}

	response.OK(c, link)
}

// LinkProgram links a program to a designation.
// POST /api/designation-programs
func (h *DesignationHandler) LinkProgram(c *gin.Context) {
	caller, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	var req dto.CreateDesignationProgramRequest
	if !bindJSON(c, &req) {
		return
	}

	link, err := h.designationSvc.LinkProgram(c.Request.Context(), &req, caller)
	if err != nil {
		h.handleDesignationError(c, err)
		return
	}

	response.Created(c, link)
}

// UpdateProgram applies the supplied fields to a designation program.
// PUT|PATCH /api/designation-programs/:id
func (h *DesignationHandler) UpdateProgram(c *gin.Context) {
	caller, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateDesignationProgramRequest
	if !bindJSON(c, &req) {
		return
	}

	link, err := h.designationSvc.UpdateProgram(c.Request.Context(), id, &req, caller)
	if err != nil {
		h.handleDesignationError(c, err)
		return
	}

	response.OK(c, link)
}

// UnlinkProgram unlinks a program from a designation.
// DELETE /api/designation-programs/:id
func (h *DesignationHandler) UnlinkProgram(c *gin.Context) {
	caller, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.designationSvc.UnlinkProgram(c.Request.Context(), id, caller); err != nil {
		h.handleDesignationError(c, err)
		return
	}

	response.NoContent(c)
}

// ── trainee designations ──

// ListAssignments lists trainee designations.
// GET /api/trainee-designations
func (h *DesignationHandler) ListAssignments(c *gin.Context) {
	q, ok := bindList(c)
	if !ok {
		return
	}

	page, err := h.designationSvc.ListAssignments(c.Request.Context(), q)
	if err != nil {
		h.handleDesignationError(c, err)
		return
	}

	renderPage(c, page)
}

// GetAssignment returns one trainee designation.
// GET /api/trainee-designations/:id
func (h *DesignationHandler) GetAssignment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	assignment, err := h.designationSvc.GetAssignment(c.Request.Context(), id)
	if err != nil {
		h.handleDesignationError(c, err)
		return
	}

	response.OK(c, assignment)
}

// Assign assigns a designation to a trainee.
// POST /api/trainee-designations
func (h *DesignationHandler) Assign(c *gin.Context) {
	caller, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	var req dto.CreateTraineeDesignationRequest
	if !bindJSON(c, &req) {
		return
	}

	assignment, err := h.designationSvc.Assign(c.Request.Context(), &req, caller)
	if err != nil {
		h.handleDesignationError(c, err)
		return
	}

	response.Created(c, assignment)
}

// UpdateAssignment applies the supplied fields to a trainee designation.
// PUT|PATCH /api/trainee-designations/:id
func (h *DesignationHandler) UpdateAssignment(c *gin.Context) {
	caller, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateTraineeDesignationRequest
	if !bindJSON(c, &req) {
		return
	}

	assignment, err := h.designationSvc.UpdateAssignment(c.Request.Context(), id, &req, caller)
	if err != nil {
		h.handleDesignationError(c, err)
		return
	}

	response.OK(c, assignment)
}

// Unassign removes a trainee designation.
// DELETE /api/trainee-designations/:id
func (h *DesignationHandler) Unassign(c *gin.Context) {
	caller, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.designationSvc.Unassign(c.Request.Context(), id, caller); err != nil {
		h.handleDesignationError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *DesignationHandler) handleDesignationError(c *gin.Context, err error) {
	if renderFieldError(c, err, 23001) {
		return
	}
	switch {
	case errors.Is(err, service.ErrDesignationNotFound):
		response.NotFound(c, 23002, "designation not found")
	case errors.Is(err, service.ErrDesignationProgramNotFound):
		response.NotFound(c, 23003, "designation program not found")
	case errors.Is(err, service.ErrTraineeDesignationNotFound):
		response.NotFound(c, 23004, "trainee designation not found")
	default:
		response.InternalError(c)
	}
}
