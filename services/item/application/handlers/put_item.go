package handlers

import (
	"net/http"

	"github.com/ghuser/itemflow/pkg/errhttp"
	"github.com/ghuser/itemflow/pkg/httpx"
	pkgvalidator "github.com/ghuser/itemflow/pkg/validator"
)

// PutItemHandler handles PUT /items/{id} requests.
type PutItemHandler struct {
	svc ItemService
}

// NewPutItemHandler returns a PutItemHandler backed by the given service.
func NewPutItemHandler(svc ItemService) *PutItemHandler {
	return &PutItemHandler{svc: svc}
}

// Execute replaces an existing item's fields.
//
//	@Summary		Update item
//	@Description	Overwrites the item's fields; the email must be deliverable
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string		true	"Item ID"
//	@Param			request	body		ItemRequest	true	"Item fields"
//	@Success		200		{object}	ItemResponse
//	@Failure		400		{object}	httpx.ErrorResponse
//	@Failure		404		{object}	httpx.ErrorResponse
//	@Failure		409		{object}	httpx.ErrorResponse
//	@Router			/items/{id} [put]
func (h *PutItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, ok := itemID(w, r)
	if !ok {
		return
	}

	req, ok := pkgvalidator.ValidateRequest[ItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Update(r.Context(), id, toFields(req))
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusOK, toResponse(item))
}
