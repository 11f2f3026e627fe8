package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-backend/internal/domains/category"
	"library-backend/internal/shared/response"
)

type CategoryHandler struct {
	service category.Service
}

func NewCategoryHandler(svc category.Service) *CategoryHandler {
	return &CategoryHandler{service: svc}
}

// List - GET /categories (also serves /categories/filter)
func (h *CategoryHandler) List(c *gin.Context) {
	var req category.ListCategoriesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	resp, err := h.service.List(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, category.GetHTTPStatusCode(err), "LIST_CATEGORIES_FAILED", err.Error())
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, "Success", resp.Categories, resp.Meta)
}

// GetByID - GET /categories/:id
func (h *CategoryHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, category.GetHTTPStatusCode(err), "GET_CATEGORY_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Success", resp)
}

// GetBooks - GET /categories/:id/books
func (h *CategoryHandler) GetBooks(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}

	books, err := h.service.GetBooks(c.Request.Context(), id)
	if err != nil {
		response.ErrorResponse(c, category.GetHTTPStatusCode(err), "GET_CATEGORY_BOOKS_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Success", books)
}

// Create - POST /categories (admin)
func (h *CategoryHandler) Create(c *gin.Context) {
	var req category.CreateCategoryRequest
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
		response.ErrorResponse(c, category.GetHTTPStatusCode(err), "CREATE_CATEGORY_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, "Category created successfully", resp)
}

// Update - PUT /categories/:id (admin)
func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}

	var req category.UpdateCategoryRequest
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
		response.ErrorResponse(c, category.GetHTTPStatusCode(err), "UPDATE_CATEGORY_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Category updated successfully", resp)
}

// Delete - DELETE /categories/:id (admin)
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ErrorResponse(c, category.GetHTTPStatusCode(err), "DELETE_CATEGORY_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Category deleted successfully", nil)
}
