package category

import (
	"context"
	"time"

	"github.com/google/uuid"

	"library-backend/internal/shared/query"
)

// ListFilter is the repository-side shape of a categories listing.
// CreatedFrom/CreatedTo are only applied when both are set.
type ListFilter struct {
	Name        string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Sort        query.Sort
	Page        query.Pagination
}

type Repository interface {
	Create(ctx context.Context, cat *Category) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)

	// Exists is the foreign-key pre-check used by the book domain.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	List(ctx context.Context, filter *ListFilter) ([]Category, int, error)
	Update(ctx context.Context, cat *Category) error
	Delete(ctx context.Context, id uuid.UUID) error
}
