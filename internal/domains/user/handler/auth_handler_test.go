package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/user"
	"library-backend/pkg/jwt"
)

type mockUserService struct {
	mock.Mock
}

func (m *mockUserService) Register(ctx context.Context, req *user.RegisterRequest) (*user.AuthResponse, error) {
	args := m.Called(ctx, req)
	if r := args.Get(0); r != nil {
		return r.(*user.AuthResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserService) Login(ctx context.Context, req *user.LoginRequest) (*user.AuthResponse, error) {
	args := m.Called(ctx, req)
	if r := args.Get(0); r != nil {
		return r.(*user.AuthResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserService) Logout(ctx context.Context, claims *jwt.Claims) error {
	args := m.Called(ctx, claims)
	return args.Error(0)
}

func (m *mockUserService) Refresh(ctx context.Context, refreshToken string) (*user.AuthResponse, error) {
	args := m.Called(ctx, refreshToken)
	if r := args.Get(0); r != nil {
		return r.(*user.AuthResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserService) Me(ctx context.Context, userID uuid.UUID) (*user.UserDTO, error) {
	args := m.Called(ctx, userID)
	if r := args.Get(0); r != nil {
		return r.(*user.UserDTO), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserService) Create(ctx context.Context, req *user.CreateUserRequest) (*user.UserDTO, error) {
	args := m.Called(ctx, req)
	if r := args.Get(0); r != nil {
		return r.(*user.UserDTO), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserService) GetByID(ctx context.Context, id uuid.UUID) (*user.UserDTO, error) {
	args := m.Called(ctx, id)
	if r := args.Get(0); r != nil {
		return r.(*user.UserDTO), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserService) List(ctx context.Context, req *user.ListUsersRequest) (*user.ListUsersResponse, error) {
	args := m.Called(ctx, req)
	if r := args.Get(0); r != nil {
		return r.(*user.ListUsersResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserService) Update(ctx context.Context, id uuid.UUID, req *user.UpdateUserRequest) (*user.UserDTO, error) {
	args := m.Called(ctx, id, req)
	if r := args.Get(0); r != nil {
		return r.(*user.UserDTO), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func authTestRouter(svc user.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewAuthHandler(svc)

	r := gin.New()
	r.POST("/auth/register", h.Register)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/refresh", h.Refresh)
	return r
}

func authResponseFixture(email string) *user.AuthResponse {
	return &user.AuthResponse{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		User:         user.UserDTO{ID: uuid.New(), Email: email, Role: user.RoleMember},
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	svc := new(mockUserService)
	r := authTestRouter(svc)

	svc.On("Register", mock.Anything, mock.MatchedBy(func(req *user.RegisterRequest) bool {
		return req.Email == "ada@example.com"
	})).Return(authResponseFixture("ada@example.com"), nil).Once()

	body, _ := json.Marshal(map[string]string{
		"name":     "Ada Lovelace",
		"email":    "ada@example.com",
		"password": "correct-horse",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "access_token")
	svc.AssertExpectations(t)
}

func TestAuthHandler_Register_ValidationFieldMap(t *testing.T) {
	svc := new(mockUserService)
	r := authTestRouter(svc)

	body, _ := json.Marshal(map[string]string{
		"name":     "Ada Lovelace",
		"email":    "not-an-email",
		"password": "short",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		Error struct {
			Code    string            `json:"code"`
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)
	assert.Contains(t, resp.Error.Details, "email")
	assert.Contains(t, resp.Error.Details, "password")

	svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestAuthHandler_Register_DuplicateEmailIs400(t *testing.T) {
	svc := new(mockUserService)
	r := authTestRouter(svc)

	svc.On("Register", mock.Anything, mock.Anything).
		Return(nil, user.ErrEmailAlreadyExists).Once()

	body, _ := json.Marshal(map[string]string{
		"name":     "Ada Lovelace",
		"email":    "ada@example.com",
		"password": "correct-horse",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	svc := new(mockUserService)
	r := authTestRouter(svc)

	svc.On("Login", mock.Anything, mock.MatchedBy(func(req *user.LoginRequest) bool {
		return req.Email == "ada@example.com" && req.Password == "correct-horse"
	})).Return(authResponseFixture("ada@example.com"), nil).Once()

	body, _ := json.Marshal(map[string]string{
		"email":    "ada@example.com",
		"password": "correct-horse",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "refresh_token")
}

func TestAuthHandler_Login_BadCredentialsIs401(t *testing.T) {
	svc := new(mockUserService)
	r := authTestRouter(svc)

	svc.On("Login", mock.Anything, mock.Anything).
		Return(nil, user.ErrInvalidCredentials).Once()

	body, _ := json.Marshal(map[string]string{
		"email":    "ada@example.com",
		"password": "wrong",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Login_InactiveAccountIs403(t *testing.T) {
	svc := new(mockUserService)
	r := authTestRouter(svc)

	svc.On("Login", mock.Anything, mock.Anything).
		Return(nil, user.ErrAccountInactive).Once()

	body, _ := json.Marshal(map[string]string{
		"email":    "ada@example.com",
		"password": "correct-horse",
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAuthHandler_Refresh_InvalidTokenIs401(t *testing.T) {
	svc := new(mockUserService)
	r := authTestRouter(svc)

	svc.On("Refresh", mock.Anything, "stale-token").
		Return(nil, user.ErrInvalidToken).Once()

	body, _ := json.Marshal(map[string]string{"refresh_token": "stale-token"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
