package user

import (
	"time"

	"github.com/google/uuid"
)

// User maps 1:1 to the users table.
type User struct {
	ID    uuid.UUID `db:"id" json:"id"`
	Name  string    `db:"name" json:"name"`
	Email string    `db:"email" json:"email"`

	PasswordHash string `db:"password_hash" json:"-"` // never serialized

	Phone   *string `db:"phone" json:"phone,omitempty"`
	Address *string `db:"address" json:"address,omitempty"`

	Role     Role `db:"role" json:"role"`
	IsActive bool `db:"is_active" json:"is_active"`

	MembershipExpiresAt *time.Time `db:"membership_expires_at" json:"membership_expires_at,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Role is a closed set; unknown role strings are rejected at validation
// time, never checked per-request.
type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleAuthor        Role = "author"
	RoleMember        Role = "member"
)

// AllRoles returns every valid role, for enum-membership validation.
func AllRoles() []interface{} {
	return []interface{}{RoleAdministrator, RoleAuthor, RoleMember}
}

func (r Role) IsValid() bool {
	switch r {
	case RoleAdministrator, RoleAuthor, RoleMember:
		return true
	}
	return false
}

// roleLabels is the display-label table for roles.
var roleLabels = map[Role]string{
	RoleAdministrator: "Administrator",
	RoleAuthor:        "Author",
	RoleMember:        "Member",
}

// Label returns the human-readable role name.
func (r Role) Label() string {
	if label, ok := roleLabels[r]; ok {
		return label
	}
	return string(r)
}

func (r Role) String() string {
	return string(r)
}

// HasMembershipExpired reports whether a member's subscription lapsed.
func (u *User) HasMembershipExpired() bool {
	if u.MembershipExpiresAt == nil {
		return false
	}
	return time.Now().After(*u.MembershipExpiresAt)
}
