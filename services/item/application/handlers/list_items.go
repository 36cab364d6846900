package handlers

import (
	"net/http"

	"github.com/ghuser/storefront/pkg/errhttp"
	"github.com/ghuser/storefront/pkg/httpx"
	"github.com/ghuser/storefront/pkg/logger"
	appsvcs "github.com/ghuser/storefront/services/item/application/services"
)

// ListItemsHandler handles GET /items requests.
type ListItemsHandler struct {
	svc *appsvcs.Services
	log logger.Logger
}

// NewListItemsHandler returns a ListItemsHandler backed by the given services.
func NewListItemsHandler(svc *appsvcs.Services, log logger.Logger) *ListItemsHandler {
	return &ListItemsHandler{svc: svc, log: log}
}

// Execute lists all items.
//
//	@Summary		List items
//	@Description	Returns every item in creation order
//	@Tags			items
//	@Produce		json
//	@Success		200	{object}	httpx.ListBody[ItemResponse]
//	@Router			/items [get]
func (h *ListItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Item.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, h.log, err)
		return
	}
	httpx.List(w, toItemResponses(items))
}
