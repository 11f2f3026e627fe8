package book

import (
	"context"

	"github.com/google/uuid"
)

// WishlistReader reports the caller's wishlist state for one book.
// Implemented by the wishlist repository; defined here so the book
// domain does not depend on wishlist internals.
type WishlistReader interface {
	StatusFor(ctx context.Context, userID, bookID uuid.UUID) (inWishlist bool, notes *string, err error)
}

// Service is the business-logic contract for books.
type Service interface {
	Create(ctx context.Context, req *CreateBookRequest) (*BookDTO, error)

	// GetByID personalizes the response when callerID is non-nil:
	// the detail then reports whether the book is on the caller's
	// wishlist, with any notes.
	GetByID(ctx context.Context, id uuid.UUID, callerID *uuid.UUID) (*BookDetail, error)

	List(ctx context.Context, req *ListBooksRequest) (*ListBooksResponse, error)
	Search(ctx context.Context, req *SearchBooksRequest) (*ListBooksResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateBookRequest) (*BookDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
