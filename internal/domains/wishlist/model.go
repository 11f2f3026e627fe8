package wishlist

import (
	"time"

	"github.com/google/uuid"

	"library-backend/internal/domains/book"
)

// Entry maps 1:1 to the wishlist_entries table.
// (user_id, book_id) is unique: a user cannot save the same book twice.
// Entries cascade-delete with their owning user.
type Entry struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"user_id"`
	BookID    uuid.UUID `db:"book_id" json:"book_id"`
	Notes     *string   `db:"notes" json:"notes,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// EntryWithBook is the joined row shape: the saved book together with
// its category, eager-loaded in one query.
type EntryWithBook struct {
	Entry
	Book book.BookWithCategory `json:"-"`
}
