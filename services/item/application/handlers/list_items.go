package handlers

import (
	"net/http"

	"github.com/ghuser/itemflow/pkg/errhttp"
	"github.com/ghuser/itemflow/pkg/httpx"
)

// ListItemsHandler handles GET /items requests.
type ListItemsHandler struct {
	svc ItemService
}

// NewListItemsHandler returns a ListItemsHandler backed by the given service.
func NewListItemsHandler(svc ItemService) *ListItemsHandler {
	return &ListItemsHandler{svc: svc}
}

// Execute lists all items.
//
//	@Summary		List items
//	@Description	Returns every item in the store
//	@Tags			items
//	@Produce		json
//	@Success		200	{array}		ItemResponse
//	@Failure		500	{object}	httpx.ErrorResponse
//	@Router			/items [get]
func (h *ListItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toResponses(items))
}
