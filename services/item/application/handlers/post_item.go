package handlers

import (
	"net/http"

	"github.com/ghuser/itemflow/pkg/errhttp"
	"github.com/ghuser/itemflow/pkg/httpx"
	pkgvalidator "github.com/ghuser/itemflow/pkg/validator"
)

// PostItemHandler handles POST /items requests.
type PostItemHandler struct {
	svc ItemService
}

// NewPostItemHandler returns a PostItemHandler backed by the given service.
func NewPostItemHandler(svc ItemService) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute creates a new item.
//
//	@Summary		Create item
//	@Description	Creates a new item; the email must be deliverable (format + MX record)
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ItemRequest	true	"Item fields"
//	@Success		201		{object}	ItemResponse
//	@Failure		400		{object}	httpx.ErrorResponse
//	@Failure		409		{object}	httpx.ErrorResponse
//	@Router			/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[ItemRequest](w, r)
	if !ok {
		return
	}

	item, err := h.svc.Create(r.Context(), toFields(req))
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}

	httpx.JSON(w, http.StatusCreated, toResponse(item))
}
