package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/storefront/pkg/errhttp"
	"github.com/ghuser/storefront/pkg/httpx"
	"github.com/ghuser/storefront/pkg/logger"
	appsvcs "github.com/ghuser/storefront/services/user/application/services"
)

// GetUserHandler handles GET /users/{id} requests.
type GetUserHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewGetUserHandler returns a GetUserHandler backed by the given services.
func NewGetUserHandler(svc *appsvcs.Services, log logger.Logger) *GetUserHandler {
	return &GetUserHandler{svc: svc, log: log}
}

// Execute returns one user.
//
//	@Summary	Get user
//	@Tags		users
//	@Produce	json
//	@Param		id	path		string	true	"User ID"
//	@Success	200	{object}	httpx.DataBody[UserResponse]
//	@Failure	404	{object}	httpx.ErrorBody
//	@Router		/users/{id} [get]
func (h *GetUserHandler) Execute(w http.ResponseWriter, r *http.Request) {
	user, err := h.svc.User.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	httpx.Data(w, http.StatusOK, toUserResponse(user))
}
