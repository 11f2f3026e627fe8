package category

import (
	"time"

	"github.com/google/uuid"
)

// Category maps 1:1 to the categories table. A category owns zero or
// more books; a book references at most one category.
type Category struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
