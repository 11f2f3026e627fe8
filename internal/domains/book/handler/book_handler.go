package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-backend/internal/domains/book"
	"library-backend/internal/shared/middleware"
	"library-backend/internal/shared/response"
)

type BookHandler struct {
	service book.Service
}

func NewBookHandler(svc book.Service) *BookHandler {
	return &BookHandler{service: svc}
}

// List - GET /books and GET /books/filter
func (h *BookHandler) List(c *gin.Context) {
	var req book.ListBooksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	resp, err := h.service.List(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, book.GetHTTPStatusCode(err), "LIST_BOOKS_FAILED", err.Error())
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, "Success", resp.Books, resp.Meta)
}

// Search - GET /books/search?q=term
func (h *BookHandler) Search(c *gin.Context) {
	var req book.SearchBooksRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	resp, err := h.service.Search(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, book.GetHTTPStatusCode(err), "SEARCH_BOOKS_FAILED", err.Error())
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, "Success", resp.Books, resp.Meta)
}

// GetByID - GET /books/:id
// Public, but personalized when a valid bearer token accompanies the
// request (OptionalAuth middleware).
func (h *BookHandler) GetByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	var callerID *uuid.UUID
	if v, exists := c.Get(middleware.CtxUserID); exists {
		if userID, ok := v.(uuid.UUID); ok {
			callerID = &userID
		}
	}

	resp, err := h.service.GetByID(c.Request.Context(), id, callerID)
	if err != nil {
		response.ErrorResponse(c, book.GetHTTPStatusCode(err), "GET_BOOK_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Success", resp)
}

// Create - POST /books (bearer)
func (h *BookHandler) Create(c *gin.Context) {
	var req book.CreateBookRequest
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
		h.writeError(c, err, "CREATE_BOOK_FAILED")
		return
	}

	response.Success(c, http.StatusCreated, "Book created successfully", resp)
}

// Update - PUT /books/:id (bearer)
func (h *BookHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	var req book.UpdateBookRequest
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
		h.writeError(c, err, "UPDATE_BOOK_FAILED")
		return
	}

	response.Success(c, http.StatusOK, "Book updated successfully", resp)
}

// Delete - DELETE /books/:id (bearer)
func (h *BookHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.ErrorResponse(c, book.GetHTTPStatusCode(err), "DELETE_BOOK_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Book deleted successfully", nil)
}

// writeError reports a missing category as a field-level validation
// failure, matching how the declarative foreign-key rule is surfaced.
func (h *BookHandler) writeError(c *gin.Context, err error, code string) {
	if errors.Is(err, book.ErrCategoryNotFound) {
		response.ValidationFailed(c, map[string]string{
			"category_id": "referenced category does not exist",
		})
		return
	}

	response.ErrorResponse(c, book.GetHTTPStatusCode(err), code, err.Error())
}
