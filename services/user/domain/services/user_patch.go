// Package services contains stateless domain services for the user bounded context.
package services

import "github.com/ghuser/storefront/services/user/domain/models"

// ApplyUserPatch overlays the non-nil fields of patch onto user.
// ID and CreatedAt are never touched and no timestamp is refreshed.
func ApplyUserPatch(user models.User, patch models.UserPatch) models.User {
	if patch.Email != nil {
		user.Email = *patch.Email
	}
	if patch.Name != nil {
		user.Name = *patch.Name
	}
	if patch.Role != nil {
		user.Role = *patch.Role
	}
	return user
}
