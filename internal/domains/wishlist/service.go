package wishlist

import (
	"context"

	"github.com/google/uuid"

	"library-backend/internal/shared/query"
)

// Service exposes wishlist operations. The caller's id comes from the
// authenticated request context, never from the payload.
type Service interface {
	Create(ctx context.Context, userID uuid.UUID, req CreateWishlistRequest) (*EntryDTO, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*EntryDTO, error)
	List(ctx context.Context, userID uuid.UUID, req ListWishlistRequest) ([]EntryDTO, query.Meta, error)
	Update(ctx context.Context, userID, id uuid.UUID, req UpdateWishlistRequest) (*EntryDTO, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
	Check(ctx context.Context, userID, bookID uuid.UUID) (*CheckResponse, error)
}
