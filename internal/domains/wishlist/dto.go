package wishlist

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"library-backend/internal/domains/book"
	"library-backend/internal/shared/query"
)

type CreateWishlistRequest struct {
	BookID string `json:"book_id"`
	Notes  string `json:"notes"`
}

func (r CreateWishlistRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BookID, validation.Required, is.UUID),
		validation.Field(&r.Notes, validation.Length(0, 500)),
	)
}

type UpdateWishlistRequest struct {
	Notes *string `json:"notes"`
}

func (r UpdateWishlistRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Notes, validation.When(r.Notes != nil,
			validation.Length(0, 500),
		)),
	)
}

type ListWishlistRequest struct {
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}

// WishlistSortFields are the columns exposed for sorting a user's wishlist.
var WishlistSortFields = []string{"created_at", "updated_at"}

type EntryDTO struct {
	ID        uuid.UUID    `json:"id"`
	BookID    uuid.UUID    `json:"book_id"`
	Notes     *string      `json:"notes"`
	Book      book.BookDTO `json:"book"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func (e *EntryWithBook) ToDTO() EntryDTO {
	return EntryDTO{
		ID:        e.ID,
		BookID:    e.BookID,
		Notes:     e.Notes,
		Book:      e.Book.ToDTO(),
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

type ListWishlistResponse struct {
	Entries []EntryDTO `json:"entries"`
	Meta    query.Meta `json:"meta"`
}

// CheckResponse reports whether a book is on the caller's wishlist.
// Entry is null when the book is not saved.
type CheckResponse struct {
	InWishlist bool      `json:"in_wishlist"`
	Entry      *EntryDTO `json:"entry"`
}
