package user

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"library-backend/internal/shared/query"
)

// DateLayout is the wire format for membership_expires_at.
const DateLayout = "2006-01-02"

// ========================================
// AUTH DTOs
// ========================================

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(2, 100),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
			validation.Length(5, 255),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be 8-128 characters"),
		),
		validation.Field(&r.Phone,
			validation.Length(0, 20),
		),
		validation.Field(&r.Address,
			validation.Length(0, 255),
		),
	)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r RefreshTokenRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.RefreshToken, validation.Required.Error("refresh_token is required")),
	)
}

// AuthResponse carries the token pair plus the safe user representation.
type AuthResponse struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	User         UserDTO   `json:"user"`
}

// ========================================
// USER DTOs
// ========================================

// UserDTO is the public user representation; it never carries the
// password hash.
type UserDTO struct {
	ID                  uuid.UUID  `json:"id"`
	Name                string     `json:"name"`
	Email               string     `json:"email"`
	Phone               *string    `json:"phone,omitempty"`
	Address             *string    `json:"address,omitempty"`
	Role                Role       `json:"role"`
	RoleLabel           string     `json:"role_label"`
	IsActive            bool       `json:"is_active"`
	MembershipExpiresAt *time.Time `json:"membership_expires_at,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

func (u *User) ToDTO() UserDTO {
	return UserDTO{
		ID:                  u.ID,
		Name:                u.Name,
		Email:               u.Email,
		Phone:               u.Phone,
		Address:             u.Address,
		Role:                u.Role,
		RoleLabel:           u.Role.Label(),
		IsActive:            u.IsActive,
		MembershipExpiresAt: u.MembershipExpiresAt,
		CreatedAt:           u.CreatedAt,
		UpdatedAt:           u.UpdatedAt,
	}
}

// CreateUserRequest is the admin-side create; unlike registration it can
// set role, active flag and membership expiry directly.
type CreateUserRequest struct {
	Name                string `json:"name"`
	Email               string `json:"email"`
	Password            string `json:"password"`
	Phone               string `json:"phone,omitempty"`
	Address             string `json:"address,omitempty"`
	Role                Role   `json:"role"`
	IsActive            *bool  `json:"is_active,omitempty"`
	MembershipExpiresAt string `json:"membership_expires_at,omitempty"`
}

func (r CreateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(2, 100),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
			validation.Length(5, 255),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be 8-128 characters"),
		),
		validation.Field(&r.Phone, validation.Length(0, 20)),
		validation.Field(&r.Address, validation.Length(0, 255)),
		validation.Field(&r.Role,
			validation.Required.Error("role is required"),
			validation.In(AllRoles()...).Error("role must be one of: administrator, author, member"),
		),
		validation.Field(&r.MembershipExpiresAt,
			validation.Date(DateLayout).Error("membership_expires_at must be a date (YYYY-MM-DD)"),
		),
	)
}

// UpdateUserRequest applies "sometimes" semantics: every field is
// optional, but a field that is present is validated in full. Omitted
// fields leave the stored value untouched.
type UpdateUserRequest struct {
	Name                *string `json:"name,omitempty"`
	Email               *string `json:"email,omitempty"`
	Password            *string `json:"password,omitempty"`
	Phone               *string `json:"phone,omitempty"`
	Address             *string `json:"address,omitempty"`
	Role                *Role   `json:"role,omitempty"`
	IsActive            *bool   `json:"is_active,omitempty"`
	MembershipExpiresAt *string `json:"membership_expires_at,omitempty"`
}

func (r UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.When(r.Name != nil,
				validation.Required.Error("name cannot be empty"),
				validation.Length(2, 100),
			),
		),
		validation.Field(&r.Email,
			validation.When(r.Email != nil,
				validation.Required.Error("email cannot be empty"),
				is.Email.Error("invalid email format"),
				validation.Length(5, 255),
			),
		),
		validation.Field(&r.Password,
			validation.When(r.Password != nil,
				validation.Required.Error("password cannot be empty"),
				validation.Length(8, 128).Error("password must be 8-128 characters"),
			),
		),
		validation.Field(&r.Phone,
			validation.When(r.Phone != nil, validation.Length(0, 20)),
		),
		validation.Field(&r.Address,
			validation.When(r.Address != nil, validation.Length(0, 255)),
		),
		validation.Field(&r.Role,
			validation.When(r.Role != nil,
				validation.In(AllRoles()...).Error("role must be one of: administrator, author, member"),
			),
		),
		validation.Field(&r.MembershipExpiresAt,
			validation.When(r.MembershipExpiresAt != nil,
				validation.Date(DateLayout).Error("membership_expires_at must be a date (YYYY-MM-DD)"),
			),
		),
	)
}

// ========================================
// LIST DTOs
// ========================================

// UserSortFields is the sort allow-list for the users listing.
var UserSortFields = []string{"name", "email", "created_at", "updated_at"}

type ListUsersRequest struct {
	Search    string `form:"search"` // matches name or email
	Role      string `form:"role"`
	IsActive  *bool  `form:"is_active"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
}

type ListUsersResponse struct {
	Users []UserDTO  `json:"users"`
	Meta  query.Meta `json:"meta"`
}
