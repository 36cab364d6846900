package handlers

import (
	"time"

	"github.com/ghuser/storefront/services/user/domain/models"
)

// CreateUserRequest is the request body for POST /users.
type CreateUserRequest struct {
	Email string  `json:"email"          validate:"required,email"                example:"ann@example.com"`
	Name  string  `json:"name"           validate:"required,min=1,max=100"        example:"Ann Lee"`
	Role  *string `json:"role,omitempty" validate:"omitempty,oneof=admin user guest" example:"user" enums:"admin,user,guest"`
} // @name CreateUserRequest

// UpdateUserRequest is the request body for PATCH /users/{id}.
type UpdateUserRequest struct {
	Email *string `json:"email,omitempty" validate:"omitempty,email"                 example:"ann.lee@example.com"`
	Name  *string `json:"name,omitempty"  validate:"omitempty,min=1,max=100"         example:"Ann Lee"`
	Role  *string `json:"role,omitempty"  validate:"omitempty,oneof=admin user guest" example:"admin" enums:"admin,user,guest"`
} // @name UpdateUserRequest

// UserResponse is the JSON representation of a User. It has no updatedAt.
type UserResponse struct {
	ID        string    `json:"id"        example:"1"`
	Email     string    `json:"email"     example:"ann@example.com"`
	Name      string    `json:"name"      example:"Ann Lee"`
	Role      string    `json:"role"      example:"user"`
	CreatedAt time.Time `json:"createdAt" example:"2025-01-15T10:30:00Z"`
} // @name UserResponse

// Roles have already passed the oneof check, so the conversion is direct.
func (r *CreateUserRequest) toDraft() models.UserDraft {
	d := models.UserDraft{Email: r.Email, Name: r.Name}
	if r.Role != nil {
		d.Role = models.Role(*r.Role)
	}
	return d
}

func (r *UpdateUserRequest) toPatch() models.UserPatch {
	p := models.UserPatch{Email: r.Email, Name: r.Name}
	if r.Role != nil {
		role := models.Role(*r.Role)
		p.Role = &role
	}
	return p
}

func toUserResponse(u models.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

func toUserResponses(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out
}
