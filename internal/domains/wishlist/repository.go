package wishlist

import (
	"context"

	"github.com/google/uuid"

	"library-backend/internal/shared/query"
)

// ListFilter carries the list options for a single user's wishlist.
type ListFilter struct {
	Sort query.Sort
	Page query.Pagination
}

// Repository is the persistence contract for wishlist entries. Every
// read and write is scoped by the owning user's id.
type Repository interface {
	Create(ctx context.Context, entry *Entry) error
	FindByIDForUser(ctx context.Context, id, userID uuid.UUID) (*EntryWithBook, error)
	FindByUserAndBook(ctx context.Context, userID, bookID uuid.UUID) (*EntryWithBook, error)
	ListByUser(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]EntryWithBook, int, error)
	UpdateNotes(ctx context.Context, id, userID uuid.UUID, notes *string) (*EntryWithBook, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
	StatusFor(ctx context.Context, userID, bookID uuid.UUID) (bool, *string, error)
}
