package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/storefront/pkg/errhttp"
	"github.com/ghuser/storefront/pkg/httpx"
	"github.com/ghuser/storefront/pkg/logger"
	pkgvalidator "github.com/ghuser/storefront/pkg/validator"
	appsvcs "github.com/ghuser/storefront/services/item/application/services"
)

// PatchItemHandler handles PATCH /items/{id} requests.
type PatchItemHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewPatchItemHandler returns a PatchItemHandler backed by the given services.
func NewPatchItemHandler(svc *appsvcs.Services, log logger.Logger) *PatchItemHandler {
	return &PatchItemHandler{svc: svc, log: log}
}

// Execute partially updates an item. An unknown id is reported as 404 before
// the body is looked at.
//
//	@Summary		Update item
//	@Description	Replaces only the fields present in the body and refreshes updatedAt
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Item ID"
//	@Param			request	body		UpdateItemRequest	true	"Fields to change"
//	@Success		200		{object}	httpx.DataBody[ItemResponse]
//	@Failure		400		{object}	httpx.ErrorBody
//	@Failure		404		{object}	httpx.ErrorBody
//	@Router			/items/{id} [patch]
func (h *PatchItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, err := h.svc.Item.Get(r.Context(), id); err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}

	req, err := pkgvalidator.ValidateRequest[UpdateItemRequest](r)
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}

	item, err := h.svc.Item.Update(r.Context(), id, req.toPatch())
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	httpx.Data(w, http.StatusOK, toItemResponse(item))
}
