package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Yasheenyash33/training-tracker-Dash/internal/dto"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/service"
	"github.com/Yasheenyash33/training-tracker-Dash/pkg/response"
)

// ProgramHandler programs and their topics.
type ProgramHandler struct {
	programSvc service.ProgramService
}

// NewProgramHandler creates a ProgramHandler.
func NewProgramHandler(programSvc service.ProgramService) *ProgramHandler {
	return &ProgramHandler{programSvc: programSvc}
}

// ── programs ──

// List lists programs.
// GET /api/programs
func (h *ProgramHandler) List(c *gin.Context) {
	q, ok := bindList(c)
	if !ok {
		return
	}

	page, err := h.programSvc.List(c.Request.Context(), q)
	if err != nil {
		h.handleProgramError(c, err)
		return
	}

	renderPage(c, page)
}

// Get returns one program.
// GET /api/programs/:id
func (h *ProgramHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	program, err := h.programSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.handleProgramError(c, err)
		return
	}

	response.OK(c, program)
}

// Create creates a program.
// POST /api/programs
func (h *ProgramHandler) Create(c *gin.Context) {
	caller, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	var req dto.CreateProgramRequest
	if !bindJSON(c, &req) {
		return
	}

	program, err := h.programSvc.Create(c.Request.Context(), &req, caller)
	if err != nil {
		h.handleProgramError(c, err)
		return
	}

	response.Created(c, program)
}

// Update applies the supplied fields to a program.
// PUT|PATCH /api/programs/:id
func (h *ProgramHandler) Update(c *gin.Context) {
	caller, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateProgramRequest
	if !bindJSON(c, &req) {
		return
	}

	program, err := h.programSvc.Update(c.Request.Context(), id, &req, caller)
	if err != nil {
		h.handleProgramError(c, err)
		return
	}

	response.OK(c, program)
}

// Delete removes a program with its topics.
// DELETE /api/programs/:id
func (h *ProgramHandler) Delete(c *gin.Context) {
	caller, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.programSvc.Delete(c.Request.Context(), id, caller); err != nil {
		h.handleProgramError(c, err)
		return
	}

	response.NoContent(c)
}

// ── topics ──

// ListTopics lists program topics.
// GET /api/program-topics
func (h *ProgramHandler) ListTopics(c *gin.Context) {
	q, ok := bindList(c)
	if !ok {
		return
	}

	page, err := h.programSvc.ListTopics(c.Request.Context(), q)
	if err != nil {
		h.handleProgramError(c, err)
		return
	}

	renderPage(c, page)
}

// GetTopic returns one program topic.
// GET /api/program-topics/:id
func (h *ProgramHandler) GetTopic(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	topic, err := h.programSvc.GetTopic(c.Request.Context(), id)
	if err != nil {
		h.handleProgramError(c, err)
		return
	}

	response.OK(c, topic)
}

// CreateTopic creates a program topic.
// POST /api/program-topics
func (h *ProgramHandler) CreateTopic(c *gin.Context) {
	caller, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	var req dto.CreateTopicRequest
	if !bindJSON(c, &req) {
		return
	}

	topic, err := h.programSvc.CreateTopic(c.Request.Context(), &req, caller)
	if err != nil {
		h.handleProgramError(c, err)
		return
	}

	response.Created(c, topic)
}

// UpdateTopic applies the supplied fields to a program topic.
// PUT|PATCH /api/program-topics/:id
func (h *ProgramHandler) UpdateTopic(c *gin.Context) {
	caller, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateTopicRequest
	if !bindJSON(c, &req) {
		return
	}

	topic, err := h.programSvc.UpdateTopic(c.Request.Context(), id, &req, caller)
	if err != nil {
		h.handleProgramError(c, err)
		return
	}

	response.OK(c, topic)
}

// DeleteTopic removes a program topic.
// DELETE /api/program-topics/:id
func (h *ProgramHandler) DeleteTopic(c *gin.Context) {
	caller, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.programSvc.DeleteTopic(c.Request.Context(), id, caller); err != nil {
		h.handleProgramError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *ProgramHandler) handleProgramError(c *gin.Context, err error) {
	if renderFieldError(c, err, 21001) {
		return
	}
	switch {
	case errors.Is(err, service.ErrProgramNotFound):
		response.NotFound(c, 21002, "program not found")
	case errors.Is(err, service.ErrTopicNotFound):
		response.NotFound(c, 21003, "program topic not found")
	default:
		response.InternalError(c)
	}
}
