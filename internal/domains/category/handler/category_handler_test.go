package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"library-backend/internal/domains/book"
	"library-backend/internal/domains/category"
)

type mockCategoryService struct {
	mock.Mock
}

func (m *mockCategoryService) Create(ctx context.Context, req *category.CreateCategoryRequest) (*category.Category, error) {
	args := m.Called(ctx, req)
	if c := args.Get(0); c != nil {
		return c.(*category.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryService) GetByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*category.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryService) List(ctx context.Context, req *category.ListCategoriesRequest) (*category.ListCategoriesResponse, error) {
	args := m.Called(ctx, req)
	if c := args.Get(0); c != nil {
		return c.(*category.ListCategoriesResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryService) GetBooks(ctx context.Context, id uuid.UUID) ([]book.BookDTO, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.([]book.BookDTO), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryService) Update(ctx context.Context, id uuid.UUID, req *category.UpdateCategoryRequest) (*category.Category, error) {
	args := m.Called(ctx, id, req)
	if c := args.Get(0); c != nil {
		return c.(*category.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCategoryService) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func categoryTestRouter(svc category.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewCategoryHandler(svc)

	r := gin.New()
	r.GET("/categories", h.List)
	r.GET("/categories/:id", h.GetByID)
	r.GET("/categories/:id/books", h.GetBooks)
	r.POST("/categories", h.Create)
	r.PUT("/categories/:id", h.Update)
	r.DELETE("/categories/:id", h.Delete)
	return r
}

func TestCategoryHandler_Create_Success(t *testing.T) {
	svc := new(mockCategoryService)
	r := categoryTestRouter(svc)

	created := &category.Category{
		ID:        uuid.New(),
		Name:      "Science Fiction",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	svc.On("Create", mock.Anything, mock.MatchedBy(func(req *category.CreateCategoryRequest) bool {
		return req.Name == "Science Fiction"
	})).Return(created, nil).Once()

	body, _ := json.Marshal(map[string]string{"name": "Science Fiction"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/categories", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "Science Fiction")
	svc.AssertExpectations(t)
}

func TestCategoryHandler_Create_EmptyNameIsValidationError(t *testing.T) {
	svc := new(mockCategoryService)
	r := categoryTestRouter(svc)

	body, _ := json.Marshal(map[string]string{"name": ""})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/categories", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		Error struct {
			Details map[string]string `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "name is required", resp.Error.Details["name"])

	svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCategoryHandler_GetByID_NotFound(t *testing.T) {
	svc := new(mockCategoryService)
	r := categoryTestRouter(svc)

	id := uuid.New()
	svc.On("GetByID", mock.Anything, id).Return(nil, category.ErrCategoryNotFound).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/categories/"+id.String(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCategoryHandler_GetByID_BadUUID(t *testing.T) {
	svc := new(mockCategoryService)
	r := categoryTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/categories/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestCategoryHandler_GetBooks_MissingCategory(t *testing.T) {
	svc := new(mockCategoryService)
	r := categoryTestRouter(svc)

	id := uuid.New()
	svc.On("GetBooks", mock.Anything, id).Return(nil, category.ErrCategoryNotFound).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/categories/"+id.String()+"/books", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCategoryHandler_List_PassesQueryParams(t *testing.T) {
	svc := new(mockCategoryService)
	r := categoryTestRouter(svc)

	svc.On("List", mock.Anything, mock.MatchedBy(func(req *category.ListCategoriesRequest) bool {
		return req.Name == "fic" && req.SortBy == "name" && req.Page == 2
	})).Return(&category.ListCategoriesResponse{Categories: []category.Category{}}, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/categories?name=fic&sort_by=name&page=2", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestCategoryHandler_Delete_Success(t *testing.T) {
	svc := new(mockCategoryService)
	r := categoryTestRouter(svc)

	id := uuid.New()
	svc.On("Delete", mock.Anything, id).Return(nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/categories/"+id.String(), nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
