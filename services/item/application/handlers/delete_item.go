package handlers

import (
	"net/http"

	"github.com/ghuser/itemflow/pkg/errhttp"
)

// DeleteItemHandler handles DELETE /items/{id} requests.
type DeleteItemHandler struct {
	svc ItemService
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given service.
func NewDeleteItemHandler(svc ItemService) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc}
}

// Execute deletes an item by id.
//
//	@Summary		Delete item
//	@Description	Removes the item with the given id
//	@Tags			items
//	@Param			id	path	string	true	"Item ID"
//	@Success		204
//	@Failure		400	{object}	httpx.ErrorResponse
//	@Failure		404	{object}	httpx.ErrorResponse
//	@Router			/items/{id} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
