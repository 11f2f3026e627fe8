package book

import (
	"context"
	"time"

	"github.com/google/uuid"

	"library-backend/internal/shared/query"
)

// ListFilter is the repository-side shape of a books listing.
// Search, when set, overrides the per-field predicates: it is matched
// against title OR author. All other predicates are conjunctive.
type ListFilter struct {
	Title       string
	Author      string
	CategoryID  *uuid.UUID
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Search      string
	Sort        query.Sort
	Page        query.Pagination
}

type Repository interface {
	Create(ctx context.Context, b *Book) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*BookWithCategory, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	List(ctx context.Context, filter *ListFilter) ([]BookWithCategory, int, error)

	// FindByCategory returns every book in the category, unpaginated.
	FindByCategory(ctx context.Context, categoryID uuid.UUID) ([]BookWithCategory, error)

	Update(ctx context.Context, b *Book) error
	Delete(ctx context.Context, id uuid.UUID) error
}
