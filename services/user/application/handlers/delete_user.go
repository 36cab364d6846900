package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/storefront/pkg/errhttp"
	"github.com/ghuser/storefront/pkg/httpx"
	"github.com/ghuser/storefront/pkg/logger"
	appsvcs "github.com/ghuser/storefront/services/user/application/services"
)

// DeleteUserHandler handles DELETE /users/{id} requests.
type DeleteUserHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewDeleteUserHandler returns a DeleteUserHandler backed by the given services.
func NewDeleteUserHandler(svc *appsvcs.Services, log logger.Logger) *DeleteUserHandler {
	return &DeleteUserHandler{svc: svc, log: log}
}

// Execute removes a user.
//
//	@Summary	Delete user
//	@Tags		users
//	@Param		id	path	string	true	"User ID"
//	@Success	204
//	@Failure	404	{object}	httpx.ErrorBody
//	@Router		/users/{id} [delete]
func (h *DeleteUserHandler) Execute(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.User.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	httpx.NoContent(w)
}
