// Package handlers contains one HTTP handler per item operation.
// Handlers decode and validate input, delegate to the application service,
// and translate errors through pkg/errhttp.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/ghuser/itemflow/pkg/httpx"
	appsvcs "github.com/ghuser/itemflow/services/item/application/services"
	"github.com/ghuser/itemflow/services/item/domain/models"
)

// ItemService is the slice of the application service the handlers need.
// *services.ItemService satisfies it; tests substitute a stub.
type ItemService interface {
	Create(ctx context.Context, fields appsvcs.ItemFields) (*models.Item, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error)
	List(ctx context.Context) ([]*models.Item, error)
	Update(ctx context.Context, id uuid.UUID, fields appsvcs.ItemFields) (*models.Item, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ProcessItems(ctx context.Context) ([]*models.Item, error)
}

// ItemRequest is the request body for POST /items and PUT /items/{id}.
type ItemRequest struct {
	Name        string `json:"name"        validate:"required,max=100"         example:"Sample Item"`
	Description string `json:"description" validate:"omitempty,max=255"        example:"A longer description"`
	Status      string `json:"status"      validate:"required,oneof=NEW PROCESSED CANCELLED" example:"NEW"`
	Email       string `json:"email"       validate:"required,max=120"         example:"owner@example.org"`
} // @name ItemRequest

// ItemResponse is the representation of an Item in API responses.
type ItemResponse struct {
	ID          uuid.UUID `json:"id"          example:"123e4567-e89b-12d3-a456-426614174000"`
	Name        string    `json:"name"        example:"Sample Item"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"      example:"NEW"`
	Email       string    `json:"email"       example:"owner@example.org"`
	CreatedAt   time.Time `json:"created_at"  example:"2024-01-15T10:30:00Z"`
	UpdatedAt   time.Time `json:"updated_at"  example:"2024-01-15T10:30:00Z"`
} // @name ItemResponse

func toFields(req *ItemRequest) appsvcs.ItemFields {
	return appsvcs.ItemFields{
		Name:        req.Name,
		Description: req.Description,
		Status:      req.Status,
		Email:       req.Email,
	}
}

func toResponse(item *models.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		Status:      item.Status.String(),
		Email:       item.Email,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}

func toResponses(items []*models.Item) []ItemResponse {
	out := make([]ItemResponse, len(items))
	for i, item := range items {
		out[i] = toResponse(item)
	}
	return out
}

// itemID extracts and parses the {id} URL parameter. On failure it writes a
// 400 envelope and returns false.
func itemID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "id: must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}
