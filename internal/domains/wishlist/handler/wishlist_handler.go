package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-backend/internal/domains/wishlist"
	"library-backend/internal/shared/middleware"
	"library-backend/internal/shared/response"
)

type WishlistHandler struct {
	service wishlist.Service
}

func NewWishlistHandler(svc wishlist.Service) *WishlistHandler {
	return &WishlistHandler{service: svc}
}

// List - GET /wishlist
func (h *WishlistHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.CtxUserID).(uuid.UUID)

	var req wishlist.ListWishlistRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "invalid query parameters")
		return
	}

	entries, meta, err := h.service.List(c.Request.Context(), userID, req)
	if err != nil {
		response.ErrorResponse(c, wishlist.GetHTTPStatusCode(err), "LIST_WISHLIST_FAILED", err.Error())
		return
	}

	response.SuccessWithMeta(c, http.StatusOK, "Success", entries, meta)
}

// GetByID - GET /wishlist/:id
func (h *WishlistHandler) GetByID(c *gin.Context) {
	userID := c.MustGet(middleware.CtxUserID).(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid wishlist entry id")
		return
	}

	entry, err := h.service.GetByID(c.Request.Context(), userID, id)
	if err != nil {
		response.ErrorResponse(c, wishlist.GetHTTPStatusCode(err), "GET_WISHLIST_ENTRY_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Success", entry)
}

// Create - POST /wishlist
func (h *WishlistHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.CtxUserID).(uuid.UUID)

	var req wishlist.CreateWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleValidationError(c, err)
		return
	}

	entry, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, wishlist.ErrDuplicateEntry) {
			response.Conflict(c, err.Error())
			return
		}
		response.ErrorResponse(c, wishlist.GetHTTPStatusCode(err), "CREATE_WISHLIST_ENTRY_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, "Book added to wishlist", entry)
}

// Update - PUT /wishlist/:id
func (h *WishlistHandler) Update(c *gin.Context) {
	userID := c.MustGet(middleware.CtxUserID).(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid wishlist entry id")
		return
	}

	var req wishlist.UpdateWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleValidationError(c, err)
		return
	}

	entry, err := h.service.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		response.ErrorResponse(c, wishlist.GetHTTPStatusCode(err), "UPDATE_WISHLIST_ENTRY_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Wishlist entry updated successfully", entry)
}

// Delete - DELETE /wishlist/:id
func (h *WishlistHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.CtxUserID).(uuid.UUID)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "invalid wishlist entry id")
		return
	}

	if err := h.service.Delete(c.Request.Context(), userID, id); err != nil {
		response.ErrorResponse(c, wishlist.GetHTTPStatusCode(err), "DELETE_WISHLIST_ENTRY_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Book removed from wishlist", nil)
}

// Check - GET /wishlist/check/:book_id
func (h *WishlistHandler) Check(c *gin.Context) {
	userID := c.MustGet(middleware.CtxUserID).(uuid.UUID)

	bookID, err := uuid.Parse(c.Param("book_id"))
	if err != nil {
		response.BadRequest(c, "invalid book id")
		return
	}

	result, err := h.service.Check(c.Request.Context(), userID, bookID)
	if err != nil {
		response.ErrorResponse(c, wishlist.GetHTTPStatusCode(err), "CHECK_WISHLIST_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Success", result)
}
