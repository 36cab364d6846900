package models

import "time"

// Role is the access level recorded on a User. It is stored but not enforced.
type Role string

// Known roles.
const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
	RoleGuest Role = "guest"
)

// DefaultRole is assigned when a new user names no role.
const DefaultRole = RoleUser

// ParseRole returns the Role named by s, reporting false for anything else.
func ParseRole(s string) (Role, bool) {
	switch r := Role(s); r {
	case RoleAdmin, RoleUser, RoleGuest:
		return r, true
	default:
		return "", false
	}
}

// User is the core aggregate for this bounded context. Users carry no
// update timestamp; CreatedAt is set once.
type User struct {
	ID        string
	Email     string
	Name      string
	Role      Role
	CreatedAt time.Time
}

// UserDraft carries the caller-supplied fields of a new User.
type UserDraft struct {
	Email string
	Name  string
	Role  Role // empty means DefaultRole
}

// UserPatch lists the fields a partial update replaces; nil means unchanged.
type UserPatch struct {
	Email *string
	Name  *string
	Role  *Role
}

// NewUser builds a User from a draft, defaulting the role.
func NewUser(id string, d UserDraft, now time.Time) User {
	role := d.Role
	if role == "" {
		role = DefaultRole
	}
	return User{
		ID:        id,
		Email:     d.Email,
		Name:      d.Name,
		Role:      role,
		CreatedAt: now.UTC(),
	}
}
