package handlers

import (
	"net/http"
	"net/url"

	"github.com/ghuser/storefront/pkg/errhttp"
	"github.com/ghuser/storefront/pkg/httpx"
	"github.com/ghuser/storefront/pkg/logger"
	appsvcs "github.com/ghuser/storefront/services/user/application/services"
	"github.com/ghuser/storefront/services/user/domain/models"
)

// ListUsersHandler handles GET /users requests.
type ListUsersHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewListUsersHandler returns a ListUsersHandler backed by the given services.
func NewListUsersHandler(svc *appsvcs.Services, log logger.Logger) *ListUsersHandler {
	return &ListUsersHandler{svc: svc, log: log}
}

// Execute lists users, optionally filtered by role.
//
//	@Summary		List users
//	@Description	Returns users in creation order. A single known role value filters by exact match; any other role value is ignored.
//	@Tags			users
//	@Produce		json
//	@Param			role	query		string	false	"Role filter"	Enums(admin, user, guest)
//	@Success		200		{object}	httpx.ListBody[UserResponse]
//	@Router			/users [get]
func (h *ListUsersHandler) Execute(w http.ResponseWriter, r *http.Request) {
	users, err := h.svc.User.List(r.Context(), roleFilter(r.URL.Query()))
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	httpx.List(w, toUserResponses(users))
}

// roleFilter returns the role to filter by, or nil when the query names no
// role, an unknown role, or more than one value.
func roleFilter(q url.Values) *models.Role {
	values := q["role"]
	if len(values) != 1 {
		return nil
	}
	role, ok := models.ParseRole(values[0])
	if !ok {
		return nil
	}
	return &role
}
