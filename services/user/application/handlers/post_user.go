package handlers

import (
	"net/http"

	"github.com/ghuser/storefront/pkg/errhttp"
	"github.com/ghuser/storefront/pkg/httpx"
	"github.com/ghuser/storefront/pkg/logger"
	pkgvalidator "github.com/ghuser/storefront/pkg/validator"
	appsvcs "github.com/ghuser/storefront/services/user/application/services"
)

// PostUserHandler handles POST /users requests.
type PostUserHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewPostUserHandler returns a PostUserHandler backed by the given services.
func NewPostUserHandler(svc *appsvcs.Services, log logger.Logger) *PostUserHandler {
	return &PostUserHandler{svc: svc, log: log}
}

// Execute creates a new user.
//
//	@Summary		Create user
//	@Description	Creates a user; role defaults to "user". Emails must be unique.
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateUserRequest	true	"User creation request"
//	@Success		201		{object}	httpx.DataBody[UserResponse]
//	@Failure		400		{object}	httpx.ErrorBody
//	@Failure		413		{object}	httpx.ErrorBody
//	@Router			/users [post]
func (h *PostUserHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, err := pkgvalidator.ValidateRequest[CreateUserRequest](r)
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}

	user, err := h.svc.User.Create(r.Context(), req.toDraft())
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}

	h.log.InfoContext(r.Context(), "user created", "record_id", user.ID, "role", user.Role)
	httpx.Data(w, http.StatusCreated, toUserResponse(user))
}
