package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"library-backend/internal/domains/user"
	"library-backend/internal/shared/middleware"
	"library-backend/internal/shared/response"
	"library-backend/pkg/jwt"
)

// AuthHandler serves the /auth routes.
type AuthHandler struct {
	service user.Service
}

func NewAuthHandler(svc user.Service) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Register - POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleValidationError(c, err)
		return
	}

	resp, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, user.GetHTTPStatusCode(err), "REGISTER_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusCreated, "Registered successfully", resp)
}

// Login - POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleValidationError(c, err)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		response.ErrorResponse(c, user.GetHTTPStatusCode(err), "LOGIN_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Logged in successfully", resp)
}

// Logout - POST /auth/logout (bearer)
func (h *AuthHandler) Logout(c *gin.Context) {
	claimsVal, exists := c.Get(middleware.CtxClaims)
	if !exists {
		response.Unauthorized(c, "missing authentication")
		return
	}

	claims, ok := claimsVal.(*jwt.Claims)
	if !ok {
		response.Unauthorized(c, "missing authentication")
		return
	}

	if err := h.service.Logout(c.Request.Context(), claims); err != nil {
		response.InternalServerError(c, "failed to log out")
		return
	}

	response.Success(c, http.StatusOK, "Logged out successfully", nil)
}

// Refresh - POST /auth/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req user.RefreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleValidationError(c, err)
		return
	}

	resp, err := h.service.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		response.ErrorResponse(c, user.GetHTTPStatusCode(err), "REFRESH_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Token refreshed successfully", resp)
}

// Me - GET /auth/me (bearer)
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := c.MustGet(middleware.CtxUserID).(uuid.UUID)
	if !ok {
		response.Unauthorized(c, "missing authentication")
		return
	}

	resp, err := h.service.Me(c.Request.Context(), userID)
	if err != nil {
		response.ErrorResponse(c, user.GetHTTPStatusCode(err), "ME_FAILED", err.Error())
		return
	}

	response.Success(c, http.StatusOK, "Success", resp)
}
