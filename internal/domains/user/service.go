package user

import (
	"context"

	"github.com/google/uuid"

	"library-backend/pkg/jwt"
)

// Service is the business-logic contract for auth and user management.
type Service interface {
	// Auth
	Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
	Logout(ctx context.Context, claims *jwt.Claims) error
	Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error)
	Me(ctx context.Context, userID uuid.UUID) (*UserDTO, error)

	// Admin user management
	Create(ctx context.Context, req *CreateUserRequest) (*UserDTO, error)
	GetByID(ctx context.Context, id uuid.UUID) (*UserDTO, error)
	List(ctx context.Context, req *ListUsersRequest) (*ListUsersResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateUserRequest) (*UserDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
