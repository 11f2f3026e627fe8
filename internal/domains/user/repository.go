package user

import (
	"context"

	"github.com/google/uuid"

	"library-backend/internal/shared/query"
)

// ListFilter is the repository-side shape of a users listing.
type ListFilter struct {
	Search   string
	Role     *Role
	IsActive *bool
	Sort     query.Sort
	Page     query.Pagination
}

// Repository is the data-access contract for users.
type Repository interface {
	Create(ctx context.Context, u *User) (uuid.UUID, error)
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)

	// EmailExists reports whether email is taken by a user other than
	// excludeID. Pass uuid.Nil on create.
	EmailExists(ctx context.Context, email string, excludeID uuid.UUID) (bool, error)

	List(ctx context.Context, filter *ListFilter) ([]User, int, error)
	Update(ctx context.Context, u *User) error

	// Delete removes the user; wishlist entries cascade at the store level.
	Delete(ctx context.Context, id uuid.UUID) error
}
