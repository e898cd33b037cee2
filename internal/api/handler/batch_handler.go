package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Yasheenyash33/training-tracker-Dash/internal/dto"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/service"
	"github.com/Yasheenyash33/training-tracker-Dash/pkg/response"
)

// BatchHandler batches, trainer assignments and enrollments.
type BatchHandler struct {
	batchSvc service.BatchService
}

// NewBatchHandler creates a BatchHandler.
func NewBatchHandler(batchSvc service.BatchService) *BatchHandler {
	return &BatchHandler{batchSvc: batchSvc}
}

// ── batches ──

// List lists batches.
// GET /api/batches
func (h *BatchHandler) List(c *gin.Context) {
	q, ok := bindList(c)
	if !ok {
		return
	}

	page, err := h.batchSvc.List(c.Request.Context(), q)
	if err != nil {
		h.handleBatchError(c, err)
		return
	}

	renderPage(c, page)
}

// Get returns one batch.
// GET /api/batches/:id
func (h *BatchHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	batch, err := h.batchSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.handleBatchError(c, err)
		return
	}

	response.OK(c, batch)
}

// Create creates a batch.
// POST /api/batches
func (h *BatchHandler) Create(c *gin.Context) {
	caller, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	var req dto.CreateBatchRequest
	if !bindJSON(c, &req) {
		return
	}

	batch, err := h.batchSvc.Create(c.Request.Context(), &req, caller)
	if err != nil {
		h.handleBatchError(c, err)
		return
	}

	response.Created(c, batch)
}

// Update applies the supplied fields to a batch.
// PUT|PATCH /api/batches/:id
func (h *BatchHandler) Update(c *gin.Context) {
	caller, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateBatchRequest
	if !bindJSON(c, &req) {
		return
	}

	batch, err := h.batchSvc.Update(c.Request.Context(), id, &req, caller)
	if err != nil {
		h.handleBatchError(c, err)
		return
	}

	response.OK(c, batch)
}

// Delete removes a batch.
// DELETE /api/batches/:id
func (h *BatchHandler) Delete(c *gin.Context) {
	caller, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.batchSvc.Delete(c.Request.Context(), id, caller); err != nil {
		h.handleBatchError(c, err)
		return
	}

	response.NoContent(c)
}

// ── trainers ──

// ListTrainers lists trainer assignments.
// GET /api/batch-trainers
func (h *BatchHandler) ListTrainers(c *gin.Context) {
	q, ok := bindList(c)
	if !ok {
		return
	}

	page, err := h.batchSvc.ListTrainers(c.Request.Context(), q)
	if err != nil {
		h.handleBatchError(c, err)
		return
	}

	renderPage(c, page)
}

// GetTrainer returns one trainer assignment.
// GET /api/batch-trainers/:id
func (h *BatchHandler) GetTrainer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	link, err := h.batchSvc.GetTrainer(c.Request.Context(), id)
	if err != nil {
		h.handleBatchError(c, err)
		return
	}

	response.OK(c, link)
}

// AssignTrainer assigns a trainer to a batch.
// POST /api/batch-trainers
func (h *BatchHandler) AssignTrainer(c *gin.Context) {
	caller, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	var req dto.CreateBatchTrainerRequest
	if !bindJSON(c, &req) {
		return
	}

	link, err := h.batchSvc.AssignTrainer(c.Request.Context(), &req, caller)
	if err != nil {
		h.handleBatchError(c, err)
		return
	}

	response.Created(c, link)
}

// UpdateTrainer applies the supplied fields to a trainer assignment.
// PUT|PATCH /api/batch-trainers/:id
func (h *BatchHandler) UpdateTrainer(c *gin.Context) {
	caller, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateBatchTrainerRequest
	if !bindJSON(c, &req) {
		return
	}

	link, err := h.batchSvc.UpdateTrainer(c.Request.Context(), id, &req, caller)
	if err != nil {
		h.handleBatchError(c, err)
		return
	}

	response.OK(c, link)
}

// RemoveTrainer unassigns a trainer.
// DELETE /api/batch-trainers/:id
func (h *BatchHandler) RemoveTrainer(c *gin.Context) {
	caller, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.batchSvc.RemoveTrainer(c.Request.Context(), id, caller); err != nil {
		h.handleBatchError(c, err)
		return
	}

	response.NoContent(c)
}

// ── trainees ──

// ListTrainees lists the enrollments visible to the caller.
// GET /api/batch-trainees
func (h *BatchHandler) ListTrainees(c *gin.Context) {
	caller, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	q, ok := bindList(c)
	if !ok {
		return
	}

	page, err := h.batchSvc.ListTrainees(c.Request.Context(), q, caller)
	if err != nil {
		h.handleBatchError(c, err)
		return
	}

	renderPage(c, page)
}

// GetTrainee returns one enrollment.
// GET /api/batch-trainees/:id
func (h *BatchHandler) GetTrainee(c *gin.Context) {
	caller, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	enrollment, err := h.batchSvc.GetTrainee(c.Request.Context(), id, caller)
	if err != nil {
		h.handleBatchError(c, err)
		return
	}

	response.OK(c, enrollment)
}

// Enroll enrolls a trainee in a batch.
// POST /api/batch-trainees
func (h *BatchHandler) Enroll(c *gin.Context) {
	caller, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	var req dto.CreateBatchTraineeRequest
	if !bindJSON(c, &req) {
		return
	}

	enrollment, err := h.batchSvc.Enroll(c.Request.Context(), &req, caller)
	if err != nil {
		h.handleBatchError(c, err)
		return
	}

	response.Created(c, enrollment)
}

// UpdateTrainee applies the supplied fields to a enrollment.
// PUT|PATCH /api/batch-trainees/:id
func (h *BatchHandler) UpdateTrainee(c *gin.Context) {
	caller, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateBatchTraineeRequest
	if !bindJSON(c, &req) {
		return
	}

	enrollment, err := h.batchSvc.UpdateTrainee(c.Request.Context(), id, &req, caller)
	if err != nil {
		h.handleBatchError(c, err)
		return
	}

	response.OK(c, enrollment)
}

// RemoveTrainee removes an enrollment.
// DELETE /api/batch-trainees/:id
func (h *BatchHandler) RemoveTrainee(c *gin.Context) {
	caller, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.batchSvc.RemoveTrainee(c.Request.Context(), id, caller); err != nil {
		h.handleBatchError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *BatchHandler) handleBatchError(c *gin.Context, err error) {
	if renderFieldError(c, err, 22001) {
		return
	}
	switch {
	case errors.Is(err, service.ErrBatchNotFound):
		response.NotFound(c, 22002, "batch not found")
	case errors.Is(err, service.ErrBatchTrainerNotFound):
		response.NotFound(c, 22003, "batch trainer not found")
	case errors.Is(err, service.ErrBatchTraineeNotFound):
		response.NotFound(c, 22004, "batch trainee not found")
	default:
		response.InternalError(c)
	}
}
