package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Yasheenyash33/training-tracker-Dash/internal/dto"
	"github.com/Yasheenyash33/training-tracker-Dash/internal/service"
	"github.com/Yasheenyash33/training-tracker-Dash/pkg/response"
)

// UserHandler user administration.
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// List users.
// GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	q, ok := bindList(c)
	if !ok {
		return
	}

	page, err := h.userSvc.List(c.Request.Context(), q)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	renderPage(c, page)
}

// Get a single user.
// GET /api/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	user, err := h.userSvc.Get(c.Request.Context(), id)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	response.OK(c, user)
}

// Create a user.
// POST /api/users
func (h *UserHandler) Create(c *gin.Context) {
	caller, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	var req dto.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userSvc.Create(c.Request.Context(), &req, caller)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	response.Created(c, user)
}

// Update a user. PUT and PATCH both apply only the supplied fields.
// PUT|PATCH /api/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	caller, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req dto.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userSvc.Update(c.Request.Context(), id, &req, caller)
	if err != nil {
		h.handleUserError(c, err)
		return
	}

	response.OK(c, user)
}

// Delete deactivates a user.
// DELETE /api/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	caller, ok := MustGetPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.userSvc.Delete(c.Request.Context(), id, caller); err != nil {
		h.handleUserError(c, err)
		return
	}

	response.NoContent(c)
}

func (h *UserHandler) handleUserError(c *gin.Context, err error) {
	if renderFieldError(c, err, 20001) {
		return
	}
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, 20002, "user not found")
	case errors.Is(err, service.ErrCannotDeleteSelf):
		response.BadRequest(c, 20003, err.Error())
	default:
		response.InternalError(c)
	}
}
