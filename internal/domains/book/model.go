package book

import (
	"time"

	"github.com/google/uuid"
)

// Book maps 1:1 to the books table. CategoryID is nullable: a book may
// be uncategorized, but a non-null value must reference an existing
// category.
type Book struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	Title      string     `db:"title" json:"title"`
	Author     string     `db:"author" json:"author"`
	CategoryID *uuid.UUID `db:"category_id" json:"category_id,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`
}

// BookWithCategory is the joined row shape returned by list and point
// reads; CategoryName is nil for uncategorized books. The JSON tag
// matters: cached copies round-trip through encoding/json, and only
// DTOs ever reach API responses.
type BookWithCategory struct {
	Book
	CategoryName *string `db:"category_name" json:"category_name,omitempty"`
}
