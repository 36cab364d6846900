package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/storefront/pkg/errhttp"
	"github.com/ghuser/storefront/pkg/httpx"
	"github.com/ghuser/storefront/pkg/logger"
	pkgvalidator "github.com/ghuser/storefront/pkg/validator"
	appsvcs "github.com/ghuser/storefront/services/user/application/services"
)

// PatchUserHandler handles PATCH /users/{id} requests.
type PatchUserHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewPatchUserHandler returns a PatchUserHandler backed by the given services.
func NewPatchUserHandler(svc *appsvcs.Services, log logger.Logger) *PatchUserHandler {
	return &PatchUserHandler{svc: svc, log: log}
}

// Execute partially updates a user.
//
//	@Summary	Update user
//	@Tags		users
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"User ID"
//	@Param		request	body		UpdateUserRequest	true	"Fields to change"
//	@Success	200		{object}	httpx.DataBody[UserResponse]
//	@Failure	400		{object}	httpx.ErrorBody
//	@Failure	404		{object}	httpx.ErrorBody
//	@Router		/users/{id} [patch]
func (h *PatchUserHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.svc.User.Get(r.Context(), id); err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}

	req, err := pkgvalidator.ValidateRequest[UpdateUserRequest](r)
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}

	user, err := h.svc.User.Update(r.Context(), id, req.toPatch())
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	httpx.Data(w, http.StatusOK, toUserResponse(user))
}
