package handlers

import (
	"net/http"

	"github.com/ghuser/storefront/pkg/errhttp"
	"github.com/ghuser/storefront/pkg/httpx"
	"github.com/ghuser/storefront/pkg/logger"
	pkgvalidator "github.com/ghuser/storefront/pkg/validator"
	appsvcs "github.com/ghuser/storefront/services/item/application/services"
)

// PostItemHandler handles POST /items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services, log logger.Logger) *PostItemHandler {
	return &PostItemHandler{svc: svc, log: log}
}

// Execute creates a new item.
//
//	@Summary		Create item
//	@Description	Creates an item; quantity defaults to 0
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateItemRequest	true	"Item creation request"
//	@Success		201		{object}	httpx.DataBody[ItemResponse]
//	@Failure		400		{object}	httpx.ErrorBody
//	@Failure		413		{object}	httpx.ErrorBody
//	@Router			/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, err := pkgvalidator.ValidateRequest[CreateItemRequest](r)
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}

	item, err := h.svc.Item.Create(r.Context(), req.toDraft())
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}

	h.log.InfoContext(r.Context(), "item created", "record_id", item.ID)
	httpx.Data(w, http.StatusCreated, toItemResponse(item))
}
