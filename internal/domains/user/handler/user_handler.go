package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-backend/internal/domains/user"
	"library-backend/internal/shared/response"
)

// UserHandler serves the admin-only /users routes.
type UserHandler struct {
	service user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{service: svc}
}

// List - GET /users
func (h *UserHandler) List(c *gin.Context) {
	var req user.ListUsersRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	resp, err := h.service.List(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, user.GetHTTPStatusCode(err), "LIST_USERS_FAILED", err.Error())
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, "Success", resp.Users, resp.Meta)
}

// GetByID - GET /users/:id
func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, user.GetHTTPStatusCode(err), "GET_USER_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Success", resp)
}

// Create - POST /users
func (h *UserHandler) Create(c *gin.Context) {
	var req user.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleValidationError(c, err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, user.GetHTTPStatusCode(err), "CREATE_USER_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, "User created successfully", resp)
}

// Update - PUT /users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	var req user.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleValidationError(c, err)
		return
	}

	resp, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		response.ErrorResponse(c, user.GetHTTPStatusCode(err), "UPDATE_USER_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "User updated successfully", resp)
}

// Delete - DELETE /users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ErrorResponse(c, user.GetHTTPStatusCode(err), "DELETE_USER_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "User deleted successfully", nil)
}
