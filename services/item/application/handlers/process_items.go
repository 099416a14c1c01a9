package handlers

import (
	"net/http"

	"github.com/ghuser/itemflow/pkg/errhttp"
	"github.com/ghuser/itemflow/pkg/httpx"
)

// ProcessItemsHandler handles GET /items/process requests, the batch sweep.
type ProcessItemsHandler struct {
	svc ItemService
}

// NewProcessItemsHandler returns a ProcessItemsHandler backed by the given service.
func NewProcessItemsHandler(svc ItemService) *ProcessItemsHandler {
	return &ProcessItemsHandler{svc: svc}
}

// Execute marks every item PROCESSED, concurrently and best-effort.
// Per-item failures are logged and excluded server-side; the response is
// always 200 with the successfully processed items (possibly empty). Only a
// failure to read the item snapshot yields a 500.
//
//	@Summary		Process all items
//	@Description	Transitions every item to PROCESSED; returns the successes
//	@Tags			items
//	@Produce		json
//	@Success		200	{array}		ItemResponse
//	@Failure		500	{object}	httpx.ErrorResponse
//	@Router			/items/process [get]
func (h *ProcessItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ProcessItems(r.Context())
	if err != nil {
		errhttp.WriteError(w, r, err)
		return
	}
	httpx.JSON(w, http.StatusOK, toResponses(items))
}
