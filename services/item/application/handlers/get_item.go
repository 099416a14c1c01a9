package handlers

import (
	"net/http"

	"github.com/ghuser/itemflow/pkg/errhttp"
	"github.com/ghuser/itemflow/pkg/httpx"
)

// GetItemHandler handles GET /items/{id} requests.
type GetItemHandler struct {
	svc ItemService
}

// NewGetItemHandler returns a GetItemHandler backed by the given service.
func NewGetItemHandler(svc ItemService) *GetItemHandler {
	return &GetItemHandler{svc: svc}
}

// Execute fetches a single item by id.
//
//	@Summary		Get item
//	@Description	Returns the item with the given id
//	@Tags			items
//	@Produce		json
//	@Param			id	path		string	true	"Item ID"
//	@Success		200	{object}	ItemResponse
//	@Failure		400	{object}	httpx.ErrorResponse
//	@Failure		404	{object}	httpx.ErrorResponse
//	@Router			/items/{id} [get]
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	item, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toResponse(item))
}
