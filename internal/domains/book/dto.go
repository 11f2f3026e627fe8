package book

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"library-backend/internal/shared/query"
)

// BookSortFields is the sort allow-list for book listings.
var BookSortFields = []string{"title", "author", "created_at", "updated_at"}

// CategoryRef is the embedded category block on book responses.
type CategoryRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// BookDTO is the public book representation.
type BookDTO struct {
	ID        uuid.UUID    `json:"id"`
	Title     string       `json:"title"`
	Author    string       `json:"author"`
	Category  *CategoryRef `json:"category,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// BookDetail augments a point read with the caller's wishlist state.
// InWishlist is only meaningful for authenticated callers; for anonymous
// requests both fields are omitted.
type BookDetail struct {
	BookDTO
	InWishlist    *bool   `json:"in_wishlist,omitempty"`
	WishlistNotes *string `json:"wishlist_notes,omitempty"`
}

func (b *BookWithCategory) ToDTO() BookDTO {
	dto := BookDTO{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
	if b.CategoryID != nil && b.CategoryName != nil {
		dto.Category = &CategoryRef{ID: *b.CategoryID, Name: *b.CategoryName}
	}
	return dto
}

type CreateBookRequest struct {
	Title      string `json:"title"`
	Author     string `json:"author"`
	CategoryID string `json:"category_id,omitempty"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255).Error("title must be 1-255 characters"),
		),
		validation.Field(&r.Author,
			validation.Required.Error("author is required"),
			validation.Length(1, 255).Error("author must be 1-255 characters"),
		),
		validation.Field(&r.CategoryID,
			is.UUID.Error("category_id must be a valid UUID"),
		),
	)
}

// UpdateBookRequest follows "sometimes" semantics. Sending
// category_id as an empty string detaches the book from its category.
type UpdateBookRequest struct {
	Title      *string `json:"title,omitempty"`
	Author     *string `json:"author,omitempty"`
	CategoryID *string `json:"category_id,omitempty"`
}

func (r UpdateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.When(r.Title != nil,
				validation.Required.Error("title cannot be empty"),
				validation.Length(1, 255).Error("title must be 1-255 characters"),
			),
		),
		validation.Field(&r.Author,
			validation.When(r.Author != nil,
				validation.Required.Error("author cannot be empty"),
				validation.Length(1, 255).Error("author must be 1-255 characters"),
			),
		),
		validation.Field(&r.CategoryID,
			validation.When(r.CategoryID != nil && *r.CategoryID != "",
				is.UUID.Error("category_id must be a valid UUID"),
			),
		),
	)
}

// ListBooksRequest carries the filter/sort/paginate query params for
// filter mode. start_date/end_date form an inclusive created_at range
// applied only when both are present.
type ListBooksRequest struct {
	Title      string `form:"title"`
	Author     string `form:"author"`
	CategoryID string `form:"category_id"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
	SortBy     string `form:"sort_by"`
	SortOrder  string `form:"sort_order"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}

// SearchBooksRequest is the free-text search mode: one term matched
// against title OR author.
type SearchBooksRequest struct {
	Query     string `form:"q"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}

type ListBooksResponse struct {
	Books []BookDTO  `json:"books"`
	Meta  query.Meta `json:"meta"`
}
