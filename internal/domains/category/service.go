package category

import (
	"context"

	"github.com/google/uuid"

	"library-backend/internal/domains/book"
)

// Service is the business-logic contract for categories.
type Service interface {
	Create(ctx context.Context, req *CreateCategoryRequest) (*Category, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Category, error)
	List(ctx context.Context, req *ListCategoriesRequest) (*ListCategoriesResponse, error)

	// GetBooks returns every book in the category, or
	// ErrCategoryNotFound when the category itself is absent.
	GetBooks(ctx context.Context, id uuid.UUID) ([]book.BookDTO, error)

	Update(ctx context.Context, id uuid.UUID, req *UpdateCategoryRequest) (*Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
